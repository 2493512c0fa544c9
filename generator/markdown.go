package generator

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/schemakit/schemakit/types"
)

// Markdown writes one documentation section per table: a heading with the
// table comment, a pipe table of columns, and the decoded enum options of
// any enum-commented column.
func Markdown(w io.Writer, tables []*types.Table) error {
	for _, table := range tables {
		if err := markdownTable(w, table); err != nil {
			return errors.Wrapf(err, "render table %q", table.Name)
		}
	}
	return nil
}

func markdownTable(w io.Writer, table *types.Table) error {
	if _, err := fmt.Fprintf(w, "## %s\n\n", table.Name); err != nil {
		return err
	}
	if table.Comment != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", table.Comment); err != nil {
			return err
		}
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Column", "Type", "Nullable", "Default", "Extra", "Comment"})
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tw.SetCenterSeparator("|")

	for _, col := range table.Columns {
		tw.Append([]string{
			col.Name,
			col.Type.Original,
			yesNo(col.Nullable),
			defaultText(col.Default),
			extraText(col),
			col.Comment,
		})
	}
	tw.Render()

	for _, col := range table.Columns {
		if len(col.Enum) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n- `%s`:", col.Name); err != nil {
			return err
		}
		for _, e := range col.Enum {
			if _, err := fmt.Fprintf(w, " %d=%s", e.Value, e.Label); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func defaultText(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func extraText(col *types.Column) string {
	switch {
	case col.PrimaryKey && col.AutoIncrement:
		return "PRI, auto_increment"
	case col.PrimaryKey:
		return "PRI"
	case col.AutoIncrement:
		return "auto_increment"
	}
	return ""
}
