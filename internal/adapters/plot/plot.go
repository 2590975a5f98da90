// Package plot exports per-frame detection profiles for gnuplot.
//
// For every frame two data files and two scripts are written, one pair per
// axis. Running a script produces an EPS chart of the mean gradient and the
// dispersion with the detected border positions marked.
package plot

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/bft-labs/findclip/internal/detect"
)

const gnuplotBin = "gnuplot"

var scriptTmpl = template.Must(template.New("gp").Parse(`set terminal postscript eps
set output "{{.Output}}"
set title "findclip plot '{{.Title}}'"
set y2tics
{{range .Marks}}set arrow from {{.}}, graph 0 to {{.}}, graph 1 nohead lt 4
{{end}}plot [{{.Min}}:{{.Max}}] "{{.Data}}" using 1:2 title "gradient" with lines lt 1, \
     "{{.Data}}" using 1:3 axes x1y2 title "dispersion" with lines lt 2, \
     {{.Threshold}} axes x1y2 title "threshold" with lines lt 3
`))

type script struct {
	Output    string
	Title     string
	Data      string
	Marks     []int
	Min, Max  int
	Threshold int
}

// Exporter writes plot files into Dir.
type Exporter struct {
	Dir string

	// Render runs gnuplot on every script when the binary is available.
	Render bool

	ThresholdX int
	ThresholdY int
}

// Export writes the x and y plots of one detection result.
// name is the frame source; its base name without extension prefixes the files.
func (e *Exporter) Export(ctx context.Context, name string, res detect.Result) ([]string, error) {
	base := filepath.Join(e.Dir, strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))

	var written []string
	axes := []struct {
		suffix    string
		grad      []int
		disp      []int
		lo, hi    detect.Candidate
		threshold int
	}{
		{"x", res.ColumnGradient, res.Columns.Dispersion, res.Left, res.Right, e.ThresholdX},
		{"y", res.RowGradient, res.Rows.Dispersion, res.Top, res.Bottom, e.ThresholdY},
	}
	for _, ax := range axes {
		prefix := base + "-" + ax.suffix
		files, err := e.exportAxis(ctx, prefix, name, ax.grad, ax.disp, ax.lo, ax.hi, ax.threshold)
		written = append(written, files...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func (e *Exporter) exportAxis(ctx context.Context, prefix, title string, grad, disp []int, lo, hi detect.Candidate, threshold int) ([]string, error) {
	dataPath := prefix + ".dat"
	if err := writeData(dataPath, grad, disp); err != nil {
		return nil, err
	}

	var marks []int
	if lo.OK {
		marks = append(marks, lo.Pos)
	}
	if hi.OK {
		marks = append(marks, len(grad)-hi.Pos)
	}

	scriptPath := prefix + ".gp"
	fh, err := os.Create(scriptPath)
	if err != nil {
		return []string{dataPath}, err
	}
	err = scriptTmpl.Execute(fh, script{
		Output:    prefix + ".eps",
		Title:     title,
		Data:      dataPath,
		Marks:     marks,
		Min:       -10,
		Max:       len(grad) + 9,
		Threshold: threshold,
	})
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return []string{dataPath, scriptPath}, fmt.Errorf("write %s: %w", scriptPath, err)
	}

	files := []string{dataPath, scriptPath}
	if !e.Render {
		return files, nil
	}
	bin, err := exec.LookPath(gnuplotBin)
	if err != nil {
		return files, nil
	}
	if out, err := exec.CommandContext(ctx, bin, scriptPath).CombinedOutput(); err != nil {
		return files, fmt.Errorf("gnuplot %s: %w: %s", scriptPath, err, out)
	}
	return append(files, prefix+".eps"), nil
}

// writeData writes "index gradient dispersion" rows.
func writeData(path string, grad, disp []int) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	for i, g := range grad {
		d := 0
		if i < len(disp) {
			d = disp[i]
		}
		fmt.Fprintf(bw, "%d %d %d\n", i, g, d)
	}
	if err := bw.Flush(); err != nil {
		fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return fh.Close()
}
