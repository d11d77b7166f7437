package processor

type Config struct {
	Transport  Transport
	Parser     RecordParser
	Classifier AttachmentClassifier
	Router     LedgerRouter
	Watermark  Watermark

	// optional
	Journal         Journal
	NotificationSvc NotificationSvc
	Printer         Printer

	Options Options
}

type Options struct {
	// DryRun replaces every file and network write with a log line.
	DryRun bool
	// Force deletes existing ledger files and starts from the first message.
	Force      bool
	NoDownload bool
	// NotifySummary posts the run summary into the chat.
	NotifySummary bool
	// Reaction is set on every written message when not empty.
	Reaction string
}
