package log_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/padservo/padservo/internal/log"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	r := log.NewReport(&buf, false)

	r.Report("idx=0, Pressed keys: A,")
	r.Report("")
	r.Report("idx=1,  TL=1, TR=2, BL=3, BR=4, temperature=5")

	assert.Equal(t, "idx=0, Pressed keys: A,\nidx=1,  TL=1, TR=2, BL=3, BR=4, temperature=5\n", buf.String())
}

func TestReportTimestamps(t *testing.T) {
	var buf bytes.Buffer
	log.NewReport(&buf, true).Report("idx=2")
	assert.Regexp(t, regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{3} idx=2\n$`), buf.String())
}

func TestReportNilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		log.NewReport(nil, true).Report("idx=0")
	})
}
