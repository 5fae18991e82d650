package main

import (
	"net/http"
	"os"

	"github.com/zjgcainiao/HanwenPDF/srv/generator"
	"github.com/zjgcainiao/HanwenPDF/srv/ui"
	"github.com/zjgcainiao/HanwenPDF/srv/util"
)

func main() {
	if err := util.EnsureOutputDir(generator.OutputRoot); err != nil {
		util.ErrorLogger.Fatalf("Failed to create output directory: %v", err)
	}
	if font := os.Getenv("HANWEN_FONT"); font != "" {
		generator.FontPath = font
	}

	converterUI := ui.NewConverterUI()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	addr := ":" + port

	util.InfoLogger.Printf("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, converterUI.Router()); err != nil {
		util.ErrorLogger.Fatal(err)
	}
}
