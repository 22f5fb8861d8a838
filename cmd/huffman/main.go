// Command huffman compresses and decompresses text files with Huffman codes.
//
//     huffman -c -f gettysburg.txt -o gettys.huf
//     huffman -u -f gettys.huf -o gettys.txt
//     diff gettysburg.txt gettys.txt
//
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Jerax1337/Huffman/internal/cli"
	"github.com/Jerax1337/Huffman/internal/logger"
)

func main() {
	name := filepath.Base(os.Args[0])
	log := logger.New(os.Stderr)

	cfg, err := cli.ParseArgs(name, os.Args[1:], os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case err != nil:
		os.Exit(2)
	}

	if err := cli.Run(cfg, os.Stderr, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
