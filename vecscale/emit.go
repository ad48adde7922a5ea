package vecscale

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
)

const perRow = 10

// SourceOptions names an emitted table.
type SourceOptions struct {
	Name    string // identifier; default "vecscale"
	Package string // Go package; default "vecscale"
	Size    string // C array length expression; default the diameter
	Comment string // optional single-line lead comment
}

func (o SourceOptions) name() string {
	if o.Name == "" {
		return "vecscale"
	}
	return o.Name
}

// WriteC writes the table as a C array in the layout the firmware embeds.
func WriteC(w io.Writer, t *Table, opts SourceOptions) error {
	size := opts.Size
	if size == "" {
		size = strconv.Itoa(t.Diameter())
	}
	bw := bufio.NewWriter(w)
	if opts.Comment != "" {
		fmt.Fprintf(bw, "// %s\n", opts.Comment)
	}
	fmt.Fprintf(bw, "const uint16_t %s[%s] = {\n", opts.name(), size)
	for row := 0; row < len(t.vals); row += perRow {
		bw.WriteString("   ")
		end := min(row+perRow, len(t.vals))
		for i := row; i < end; i++ {
			cell := strconv.Itoa(int(t.vals[i])) + ","
			if i < end-1 {
				fmt.Fprintf(bw, " %-6s", cell)
			} else {
				fmt.Fprintf(bw, " %s", cell)
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("};\n")
	return bw.Flush()
}

// WriteGo writes the table as a gofmt-ed Go array declaration.
func WriteGo(w io.Writer, t *Table, opts SourceOptions) error {
	pkg := opts.Package
	if pkg == "" {
		pkg = "vecscale"
	}
	var b bytes.Buffer
	b.WriteString("// Code generated by mkvecscale; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	if opts.Comment != "" {
		fmt.Fprintf(&b, "// %s\n", opts.Comment)
	}
	fmt.Fprintf(&b, "var %s = [%d]uint16{\n", opts.name(), t.Diameter())
	for row := 0; row < len(t.vals); row += perRow {
		b.WriteByte('\t')
		end := min(row+perRow, len(t.vals))
		for i := row; i < end; i++ {
			if i > row {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(t.vals[i])))
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("vecscale: format go source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// WriteText writes one decimal entry per line.
func WriteText(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	for _, v := range t.vals {
		bw.WriteString(strconv.Itoa(int(v)))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
