package domain

// Document is the artifact produced by a generation request. Exactly one of
// PDF or HTML is set: PDF when rendering succeeded, HTML when the pipeline
// degraded to a printable markup document. It carries no identity beyond the
// suggested filename and is never persisted.
type Document struct {
	PDF      []byte
	HTML     string
	Degraded bool
	Filename string
}

func (d Document) ContentType() string {
	if d.Degraded {
		return "text/html; charset=utf-8"
	}
	return "application/pdf"
}

// Disposition is the Content-Disposition header value: PDFs download,
// degraded HTML opens inline so the embedded print trigger can run.
func (d Document) Disposition() string {
	if d.Degraded {
		return `inline; filename="` + d.Filename + `"`
	}
	return `attachment; filename="` + d.Filename + `"`
}
