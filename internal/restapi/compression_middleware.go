package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionConfig holds configuration options for response compression
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes to compress
	MinSize int
	// Level is the compression level 1-9
	Level int
	// ExceptContentTypes are never compressed
	ExceptContentTypes []string
}

// DefaultCompressionConfig compresses JSON, HTML and SVG over 1KB and leaves
// PNG charts alone, they are compressed already
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize:            1024,
		Level:              6,
		ExceptContentTypes: []string{"image/png", "image/jpeg"},
	}
}

// NewCompressionMiddleware creates a compression middleware with the given configuration
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapper, err := gzhttp.NewWrapper(
			gzhttp.MinSize(config.MinSize),
			gzhttp.CompressionLevel(config.Level),
			gzhttp.ExceptContentTypes(config.ExceptContentTypes),
		)
		if err != nil {
			return gzhttp.GzipHandler(next)
		}
		return wrapper(next)
	}
}

// CompressionMiddleware applies gzip compression with default settings
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(DefaultCompressionConfig())(next)
}
