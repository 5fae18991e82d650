package convert

import (
	"fmt"

	"github.com/longbridgeapp/opencc"
)

// DefaultMode is s2twp: Simplified to Traditional with Taiwanese phrasing,
// the variant readers of these editions expect.
const DefaultMode = "s2twp"

// OpenCC converts between Chinese scripts using the OpenCC dictionaries.
type OpenCC struct {
	cc *opencc.OpenCC
}

// NewOpenCC opens a converter for a mode such as s2t, s2twp or t2s.
func NewOpenCC(mode string) (*OpenCC, error) {
	if mode == "" {
		mode = DefaultMode
	}
	cc, err := opencc.New(mode)
	if err != nil {
		return nil, fmt.Errorf("open converter %q: %w", mode, err)
	}
	return &OpenCC{cc: cc}, nil
}

func (o *OpenCC) Convert(s string) (string, error) {
	out, err := o.cc.Convert(s)
	if err != nil {
		return "", fmt.Errorf("convert %q: %w", s, err)
	}
	return out, nil
}
