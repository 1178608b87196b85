package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/shandysiswandi/logbench/internal/logbench/entity"
)

const (
	reportTitle = "       LOG ANALYSIS TIME REPORT       "
	reportWidth = 37

	// SpeedupUndefined is printed when the concurrent pass measured 0 ms.
	SpeedupUndefined = "undefined"
)

// WriteReport renders rec in the fixed plaintext layout.
func WriteReport(w io.Writer, rec entity.TimingRecord) error {
	heavy := strings.Repeat("=", reportWidth)
	light := strings.Repeat("-", reportWidth)

	speedup := SpeedupUndefined
	if s, ok := rec.Speedup(); ok {
		speedup = fmt.Sprintf("%.2f", s)
	}

	var b strings.Builder
	fmt.Fprintln(&b, heavy)
	fmt.Fprintln(&b, reportTitle)
	fmt.Fprintln(&b, heavy)
	fmt.Fprintf(&b, "Sequential Processing : %d ms\n", rec.SequentialMillis())
	fmt.Fprintf(&b, "Concurrent Processing : %d ms\n", rec.ConcurrentMillis())
	fmt.Fprintln(&b, light)
	fmt.Fprintf(&b, "Speedup Factor       : %s\n", speedup)
	fmt.Fprintln(&b, heavy)

	_, err := io.WriteString(w, b.String())
	return err
}
