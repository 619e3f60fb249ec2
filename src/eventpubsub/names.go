package eventpubsub

const (
	ConversionStartedEvent   = "ConversionStartedEvent"
	FileConvertedEvent       = "FileConvertedEvent"
	FileFailedEvent          = "FileFailedEvent"
	ConversionCompletedEvent = "ConversionCompletedEvent"
)
