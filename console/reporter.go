package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/wtmanager/wt/i18n"
)

// Reporter prints localized status lines. Info and success go to stdout,
// warnings and errors to stderr. Colour follows what each stream supports.
type Reporter struct {
	msgs   *i18n.Messages
	out    *termenv.Output
	errOut *termenv.Output
}

func New(msgs *i18n.Messages, stdout io.Writer, stderr io.Writer, opts ...termenv.OutputOption) *Reporter {
	return &Reporter{
		msgs:   msgs,
		out:    termenv.NewOutput(stdout, opts...),
		errOut: termenv.NewOutput(stderr, opts...),
	}
}

func (r *Reporter) Messages() *i18n.Messages {
	return r.msgs
}

func (r *Reporter) Info(key i18n.Key, args ...any) {
	r.print(r.out, "", key, args)
}

func (r *Reporter) Success(key i18n.Key, args ...any) {
	r.print(r.out, "2", key, args)
}

func (r *Reporter) Warn(key i18n.Key, args ...any) {
	r.print(r.errOut, "3", key, args)
}

func (r *Reporter) Error(key i18n.Key, args ...any) {
	r.print(r.errOut, "1", key, args)
}

// Line prints s to stdout unstyled.
func (r *Reporter) Line(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *Reporter) print(out *termenv.Output, color string, key i18n.Key, args []any) {
	text := r.msgs.Format(key, args...)
	if color == "" {
		fmt.Fprintln(out, text)
		return
	}
	fmt.Fprintln(out, out.String(text).Foreground(out.Color(color)).String())
}
