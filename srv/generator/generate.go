package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjgcainiao/HanwenPDF/bookcompiler"
	"github.com/zjgcainiao/HanwenPDF/convert"
)

// OutputRoot is where finished PDFs land, one directory per session.
const OutputRoot = "output"

// FontPath points at the CJK font the PDF backend embeds. Overridable for
// deployments that ship a different face.
var FontPath = "fonts/NotoSansTC-Regular.ttf"

// ConvertNovel runs one conversion job: the pasted source text is written to
// the session workspace, compiled into a paginated PDF, and progress updates
// stream to the session's WebSocket along the way.
func ConvertNovel(progress *ConversionProgress, text, mode string) error {
	sessionDir := filepath.Join(OutputRoot, progress.SessionID)
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	inputPath := filepath.Join(sessionDir, "novel.txt")
	if err := os.WriteFile(inputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write session input: %w", err)
	}

	progress.SendUpdate("Preparing the converter...")
	bc := bookcompiler.NewBookCompiler(inputPath, sessionDir)
	bc.Config.FontPath = FontPath
	if mode != "none" {
		cc, err := convert.NewOpenCC(mode)
		if err != nil {
			return err
		}
		bc.Converter = convert.NewCached(cc)
	}

	progress.SendUpdate("Laying out pages...")
	res, err := bc.Compile()
	if err != nil {
		return err
	}

	progress.SetResult(res.ArtifactPath, res.NumberedPages)
	progress.SendUpdate(fmt.Sprintf("Typeset %d numbered pages", res.NumberedPages))
	return nil
}
