// Package huffman implements Huffman coding of Unicode text.  The encoded
// form is a string of '0' and '1' characters, and the code table that
// produced it is the only thing a decoder needs to reverse the process.
//
// Typical use:
//
//     res, err := huffman.Compress(text)
//     ...
//     text, err = huffman.Decompress(res.Bits, res.Table)
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
