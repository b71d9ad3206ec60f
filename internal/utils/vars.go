package utils

// ToolUserAgent is the User-Agent sent when the configuration does not set one.
const ToolUserAgent = "concurrent-url-downloader/1.0"

const DefaultBufferSize = 32 * 1024 // 32KB copy buffer
