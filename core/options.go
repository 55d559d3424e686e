package core

import (
	"io"
	"os"
)

type Options struct {
	Format    string
	Quote     bool
	Output    string
	Noconsole bool
	Thread    int
	WarnSize  uint64
	Out       io.Writer
	Err       io.Writer
}

func (o *Options) stdout() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o *Options) stderr() io.Writer {
	if o.Err == nil {
		return os.Stderr
	}
	return o.Err
}
