package console

// LineWriter adapts the console to io.Writer with line buffering, so
// subprocess output streams through the same pause/resume discipline as
// direct calls. Incomplete lines are buffered until a newline arrives.
type LineWriter struct {
	emit func(string) error
	buf  []byte
}

// Writer returns an io.Writer that prints each complete line via Print.
func (c *Console) Writer() *LineWriter {
	return &LineWriter{emit: c.Print}
}

// ErrorWriter returns an io.Writer that prints each complete line via Error.
func (c *Console) ErrorWriter() *LineWriter {
	return &LineWriter{emit: c.Error}
}

// Write implements io.Writer.
func (w *LineWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.buf = append(w.buf, p...)

	for {
		idx := -1
		for i, b := range w.buf {
			if b == '\n' {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}

		line := string(w.buf[:idx])
		w.buf = w.buf[idx+1:]

		if err := w.emit(line); err != nil {
			return n, err
		}
	}

	return n, nil
}

// Flush writes any remaining buffered content as a final line.
func (w *LineWriter) Flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	line := string(w.buf)
	w.buf = nil
	return w.emit(line)
}
