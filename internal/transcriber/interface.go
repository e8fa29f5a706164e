package transcriber

import "context"

// Transcriber converts audio files to text using a whisper model.
type Transcriber interface {
	// Transcribe runs the model on one audio file and returns the
	// trimmed transcript text.
	Transcribe(ctx context.Context, audioPath string) (string, error)

	// Process transcribes audioPath and persists the transcript as
	// "<base>.txt" in the transcripts directory, overwriting any prior
	// transcript of the same name. Returns the transcript path.
	Process(ctx context.Context, audioPath string) (string, error)

	// ModelPath reports the resolved model file.
	ModelPath() string
}
