package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// Gruvbox Dark color palette (warm, muted, easy on eyes)
type palette struct {
	fg       string
	aqua     string
	orange   string
	yellow   string
	green    string
	blue     string
	purple   string
	red      string
	redBg    string
	yellowBg string
}

var gruvbox = palette{
	fg:       "\x1b[38;5;223m", // Soft cream (#ebdbb2)
	aqua:     "\x1b[38;5;108m", // Muted cyan-green (#8ec07c)
	orange:   "\x1b[38;5;208m", // Warm orange (#fe8019)
	yellow:   "\x1b[38;5;214m", // Soft yellow (#fabd2f)
	green:    "\x1b[38;5;142m", // Muted green (#b8bb26)
	blue:     "\x1b[38;5;109m", // Soft blue (#83a598)
	purple:   "\x1b[38;5;175m", // Muted purple (#d3869b)
	red:      "\x1b[38;5;167m", // Warm red (#fb4934)
	redBg:    "\x1b[48;5;88m",  // Dark red background
	yellowBg: "\x1b[48;5;58m",  // Dark yellow background
}

// colorComponent hashes a component name to a stable color so related log
// lines group visually.
func colorComponent(name string) string {
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	if hash%2 == 0 {
		return gruvbox.orange
	}
	return gruvbox.yellow
}

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  catalog  Dataset loaded  87 letters, 652 entries"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
	buf             *buffer.Buffer
}

func newMinimalEncoder() *minimalEncoder {
	// Create a base JSON encoder for field serialization (internal use only)
	baseEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	return &minimalEncoder{
		Encoder: baseEncoder,
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	// Time
	final.AppendString(gruvbox.aqua)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only show for WARN/ERROR with bold + background
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	// Component name (abbreviated) for visual grouping
	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	// Message
	final.AppendString("  ")
	final.AppendString(gruvbox.fg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	// Fields: extract and color values
	if len(fields) > 0 {
		final.AppendString("  ")
		final.AppendString(extractFieldValues(fields))
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for WARN/ERROR
func levelColorString(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + gruvbox.yellowBg + gruvbox.yellow + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + gruvbox.redBg + gruvbox.red + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + gruvbox.redBg + gruvbox.red + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// abbreviateName shortens component names: catalog -> catalog, options.coordinator -> o.coordinator
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// getFieldValue extracts the value from a zap field, handling different field types
func getFieldValue(field zapcore.Field) string {
	if field.Type == zapcore.StringType {
		return field.String
	}

	if field.Type == zapcore.Int64Type || field.Type == zapcore.Int32Type ||
		field.Type == zapcore.Int16Type || field.Type == zapcore.Int8Type ||
		field.Type == zapcore.Uint64Type || field.Type == zapcore.Uint32Type ||
		field.Type == zapcore.Uint16Type || field.Type == zapcore.Uint8Type {
		return fmt.Sprintf("%d", field.Integer)
	}

	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface)
	}

	return ""
}

// extractFieldValues pulls just the values from structured fields.
// Input: {"letter": "W-", "matches": 19, "capacity": 12}
// Output: "W- (19 matches, capacity 12)" with colored letters and numbers.
func extractFieldValues(fields []zapcore.Field) string {
	var values []string
	var matchCount, capacity string

	for _, field := range fields {
		switch field.Key {
		case "letter", "start_pos", "end_pos", "position":
			// Notation identifiers in blue
			val := getFieldValue(field)
			if val != "" {
				values = append(values, gruvbox.blue+val+colorReset)
			}
		case "matches":
			matchCount = getFieldValue(field)
		case "capacity":
			capacity = getFieldValue(field)
		case "entries", "skipped", "dropped", "slots", "record":
			val := getFieldValue(field)
			if val != "" {
				values = append(values, gruvbox.purple+val+colorReset+" "+field.Key)
			}
		case "error", "reason":
			val := getFieldValue(field)
			if val != "" {
				values = append(values, gruvbox.red+val+colorReset)
			}
		case "path", "file":
			val := getFieldValue(field)
			if val != "" {
				values = append(values, gruvbox.green+val+colorReset)
			}
		}
	}

	// Special formatting for pool pressure stats
	if matchCount != "" && capacity != "" {
		fg := gruvbox.fg
		num := gruvbox.purple
		values = append(values, fg+"("+num+matchCount+colorReset+fg+" matches, capacity "+num+capacity+colorReset+fg+")"+colorReset)
	}

	if len(values) == 0 {
		return ""
	}

	return strings.Join(values, " ")
}
