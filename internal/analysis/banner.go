package analysis

import (
	"errors"
	"fmt"

	"github.com/KaramelBytes/petreg/internal/dataset"
)

// BannerKind distinguishes the two top-level failure classes.
type BannerKind string

const (
	BannerMissingFile BannerKind = "missing_file"
	BannerFailure     BannerKind = "failure"
	BannerWarning     BannerKind = "warning"
)

// Banner is a user-facing message for a failed or degraded run.
type Banner struct {
	Kind    BannerKind `json:"kind"`
	Message string     `json:"message"`
}

// Describe maps a pipeline error to the banner shown instead of any result.
func Describe(err error) Banner {
	var nf *dataset.NotFoundError
	if errors.As(err, &nf) {
		return Banner{Kind: BannerMissingFile, Message: fmt.Sprintf("파일을 찾을 수 없습니다: %s", nf.Path)}
	}
	return Banner{Kind: BannerFailure, Message: fmt.Sprintf("오류가 발생했습니다: %v", err)}
}

// Warning wraps a non-fatal message such as a missing font.
func Warning(msg string) Banner {
	return Banner{Kind: BannerWarning, Message: msg}
}
