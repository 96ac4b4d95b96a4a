package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"

	"polaris-api/pkg/discord"
)

func captureStackTrace() []string {
	var pcs [stackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])

	var trace []string
	for {
		f, more := frames.Next()
		trace = append(trace, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return trace
}

// reportBug ships the report off the request goroutine. The request context
// is not reused since it ends with the response.
func reportBug(c *gin.Context, d discord.IDiscord, message string) {
	if message == "" {
		return
	}
	go func() {
		for _, chunk := range splitMessage(message, discordMaxMessageLen) {
			if err := d.ReportBug(context.Background(), chunk); err != nil {
				stdlog.Printf("pkg.response.reportBug: %v\n", err)
			}
		}
	}()
}

func splitMessage(message string, maxLen int) []string {
	var (
		chunks  []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
			current.Reset()
		}
	}

	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if current.Len()+len(line) > maxLen {
			flush()
			for len(line) > maxLen {
				chunks = append(chunks, line[:maxLen])
				line = line[maxLen:]
			}
		}
		current.WriteString(line)
	}
	flush()
	return chunks
}

func buildReport(c *gin.Context, errString string, backtrace []string) string {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	var sb strings.Builder
	sb.WriteString("================ POLARIS API ERROR ================\n")
	fmt.Fprintf(&sb, "Route   : %s\n", c.Request.URL.Path)
	fmt.Fprintf(&sb, "Method  : %s\n", c.Request.Method)
	if q := c.Request.URL.Query().Encode(); q != "" {
		fmt.Fprintf(&sb, "Params  : %s\n", q)
	}
	if len(body) > 0 {
		sb.WriteString("Body    :\n")
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, body, "    ", "  "); err == nil {
			sb.WriteString("    " + pretty.String() + "\n")
		} else {
			sb.WriteString("    " + string(body) + "\n")
		}
	}
	fmt.Fprintf(&sb, "Error   : %s\n", errString)
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			fmt.Fprintf(&sb, "[%d]: %s\n", i, line)
		}
	}
	sb.WriteString("===================================================\n")
	return sb.String()
}
