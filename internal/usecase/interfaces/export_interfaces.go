package interfaces

import "context"

type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

type Mail struct {
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

type IMailer interface {
	Send(ctx context.Context, mail Mail) error
}

// IExportArchive stores generated export files and returns a download link.
type IExportArchive interface {
	Put(ctx context.Context, name, contentType string, data []byte) (url string, err error)
}
