package card

import (
	"gopkg.in/cheggaaa/pb.v1"
)

// ShowProgress toggles a terminal progress bar in the per-sample
// annotation loops.
var ShowProgress bool

func startProgress(n int) *pb.ProgressBar {
	if !ShowProgress {
		return nil
	}
	return pb.StartNew(n)
}

func incrProgress(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Increment()
	}
}

func finishProgress(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Finish()
	}
}
