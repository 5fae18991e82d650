package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zjgcainiao/HanwenPDF/bookcompiler"
	"github.com/zjgcainiao/HanwenPDF/convert"
)

var (
	output = flag.String("o", ".", "Output directory for the generated PDF")
	mode   = flag.String("mode", convert.DefaultMode, "OpenCC conversion mode (s2t, s2twp, t2s, ...); \"none\" skips conversion")
	font   = flag.String("font", "fonts/NotoSansTC-Regular.ttf", "Path to a UTF-8 TTF font with CJK coverage")
	styles = flag.String("styles", "", "Optional YAML file overriding the default styles")
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Println("Usage: hanwenpdf [flags] novel.txt")
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	if _, err := os.Stat(input); err != nil {
		fmt.Printf("File not found: %s\n", input)
		os.Exit(1)
	}

	bc := bookcompiler.NewBookCompiler(input, *output)
	bc.Config.FontPath = *font

	if *styles != "" {
		table, err := bookcompiler.LoadStyles(*styles)
		if err != nil {
			fmt.Printf("Error loading styles: %v\n", err)
			os.Exit(1)
		}
		bc.Styles = table
	}

	if *mode != "none" {
		cc, err := convert.NewOpenCC(*mode)
		if err != nil {
			fmt.Printf("Error opening converter: %v\n", err)
			os.Exit(1)
		}
		bc.Converter = convert.NewCached(cc)
	}

	res, err := bc.Compile()
	if err != nil {
		fmt.Printf("Error compiling book: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Success! %d numbered pages written to %s\n", res.NumberedPages, res.ArtifactPath)
}
