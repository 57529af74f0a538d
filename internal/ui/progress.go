package ui

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

const pageBarTemplate = `{{ string . "term" | green }} {{ counters . }} pages {{ bar . "[" "=" ">" "-" "]" }} {{ percent . }}`

// BarProgress draws one progress bar per search term while its pages download
type BarProgress struct {
	out io.Writer
	bar *pb.ProgressBar
}

// NewBarProgress creates a progress reporter writing to out (stderr when nil)
func NewBarProgress(out io.Writer) *BarProgress {
	if out == nil {
		out = os.Stderr
	}
	return &BarProgress{out: out}
}

// StartTerm begins a new bar sized to the expected page count
func (p *BarProgress) StartTerm(term string, pages int) {
	p.finish()
	p.bar = pb.ProgressBarTemplate(pageBarTemplate).New(pages).
		SetWriter(p.out).
		Set("term", term).
		Start()
}

// PageDone moves the bar to page. The bar grows when the source keeps
// paging past its own estimate.
func (p *BarProgress) PageDone(_ string, page, pages int) {
	if p.bar == nil {
		return
	}
	if page > pages {
		p.bar.SetTotal(int64(page))
	}
	p.bar.SetCurrent(int64(page))
}

// FinishTerm completes the current bar
func (p *BarProgress) FinishTerm(string) {
	p.finish()
}

func (p *BarProgress) finish() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}
