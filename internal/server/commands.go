package server

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/redcon"

	"NumConv/constants"
	"NumConv/convops"
	"NumConv/log"
)

const InvalidArgumentsErrorMsg = "ERR wrong number of arguments for '%s' command"

type CommandFunc func(
	conn redcon.Conn,
	args [][]byte,
	conv convops.ConversionOps,
)

var CommandMap map[string]CommandFunc

func init() {
	// COMMAND lists CommandMap itself, so the map is filled in init
	CommandMap = map[string]CommandFunc{
		"ping":     Ping,
		"quit":     Quit,
		"command":  Command,
		"text2num": TextToNumber,
		"num2text": NumberToText,
		"b642num":  Base64ToNumber,
		"num2b64":  NumberToBase64,
	}
}

var Ping CommandFunc = func(
	conn redcon.Conn,
	args [][]byte,
	conv convops.ConversionOps,
) {
	if len(args) > 1 {
		conn.WriteBulk(args[1])
		return
	}
	conn.WriteString("PONG")
}

var Quit CommandFunc = func(
	conn redcon.Conn,
	args [][]byte,
	conv convops.ConversionOps,
) {
	conn.WriteString("OK")
	conn.Close()
}

var Command CommandFunc = func(
	conn redcon.Conn,
	args [][]byte,
	conv convops.ConversionOps,
) {
	names := make([]string, 0, len(CommandMap))
	for name := range CommandMap {
		names = append(names, name)
	}
	sort.Strings(names)
	WriteRedisArray(conn, names)
}

// TextToNumber accepts the phrase as one quoted argument or as several words:
// TEXT2NUM "one hundred" and TEXT2NUM one hundred are the same.
var TextToNumber CommandFunc = func(
	conn redcon.Conn,
	args [][]byte,
	conv convops.ConversionOps,
) {
	if len(args) < 2 {
		conn.WriteError(fmt.Sprintf(InvalidArgumentsErrorMsg, string(args[0])))
		return
	}

	words := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		words = append(words, string(arg))
	}

	n, err := conv.TextToNumber(strings.Join(words, " "))
	if err != nil {
		WriteConversionError(conn, string(args[0]), err)
		return
	}
	conn.WriteInt64(n)
}

var NumberToText CommandFunc = func(
	conn redcon.Conn,
	args [][]byte,
	conv convops.ConversionOps,
) {
	if len(args) != 2 {
		conn.WriteError(fmt.Sprintf(InvalidArgumentsErrorMsg, string(args[0])))
		return
	}

	text, err := conv.NumberToText(args[1])
	if err != nil {
		WriteConversionError(conn, string(args[0]), err)
		return
	}
	conn.WriteBulkString(text)
}

var Base64ToNumber CommandFunc = func(
	conn redcon.Conn,
	args [][]byte,
	conv convops.ConversionOps,
) {
	if len(args) != 2 {
		conn.WriteError(fmt.Sprintf(InvalidArgumentsErrorMsg, string(args[0])))
		return
	}

	n, err := conv.Base64ToNumber(args[1])
	if err != nil {
		WriteConversionError(conn, string(args[0]), err)
		return
	}
	conn.WriteInt64(n)
}

var NumberToBase64 CommandFunc = func(
	conn redcon.Conn,
	args [][]byte,
	conv convops.ConversionOps,
) {
	if len(args) != 2 {
		conn.WriteError(fmt.Sprintf(InvalidArgumentsErrorMsg, string(args[0])))
		return
	}

	encoded, err := conv.NumberToBase64(args[1])
	if err != nil {
		WriteConversionError(conn, string(args[0]), err)
		return
	}
	conn.WriteBulkString(encoded)
}

// WriteConversionError maps invalid input to a request-level ERR reply.
// Anything else is unexpected and is logged.
func WriteConversionError(conn redcon.Conn, command string, err error) {
	if errors.Is(err, constants.ErrInvalidInput) {
		conn.WriteError("ERR " + err.Error())
		return
	}
	log.Errorf("command %s failed: %v", command, err)
	conn.WriteError("ERR internal error")
}

func WriteRedisArray(conn redcon.Conn, strArr []string) {
	conn.WriteArray(len(strArr))
	for _, st := range strArr {
		conn.WriteBulkString(st)
	}
}
