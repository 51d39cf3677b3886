package main

import (
	"msggw-gsm7/smpp/coding/gsm7"
)

// EncodeRequest converts text to GSM 7-bit. With Auto set the shift tables
// are chosen by Seek and Tables is ignored.
type EncodeRequest struct {
	Text      string           `json:"text"`
	Tables    gsm7.ShiftTables `json:"tables"`
	Auto      bool             `json:"auto,omitempty"`
	Unpacked  bool             `json:"unpacked,omitempty"`   // one septet per octet
	CRPadding bool             `json:"cr_padding,omitempty"` // ignored when unpacked
}

type EncodeResponse struct {
	ID      string           `json:"id"`
	Tables  gsm7.ShiftTables `json:"tables"`
	Payload string           `json:"payload"` // hex
	Octets  int              `json:"octets"`
	Septets int              `json:"septets"`
	Missed  []string         `json:"missed,omitempty"`
}

// DecodeRequest converts a hex payload back to text. When UDH is set the
// payload starts with a user data header whose language elements override
// Tables.
type DecodeRequest struct {
	Payload   string           `json:"payload"`
	Coding    string           `json:"coding,omitempty"` // gsm7 (default), latin1, ucs2
	Tables    gsm7.ShiftTables `json:"tables"`
	Unpacked  bool             `json:"unpacked,omitempty"`
	CRPadding bool             `json:"cr_padding,omitempty"`
	UDH       bool             `json:"udh,omitempty"`
}

type DecodeResponse struct {
	ID         string           `json:"id"`
	Coding     string           `json:"coding"`
	Tables     gsm7.ShiftTables `json:"tables"`
	Text       string           `json:"text"`
	CodePoints int              `json:"code_points"`
}

type SeekRequest struct {
	Text string `json:"text"`
}

type SeekResponse struct {
	ID      string           `json:"id"`
	Coding  string           `json:"coding"`
	Result  string           `json:"result"`
	Tables  gsm7.ShiftTables `json:"tables"`
	Missed  int              `json:"missed"`
	Escapes int              `json:"escapes"`
	Score   int              `json:"score"`
}

// SplitRequest segments text for submission. An empty Coding picks the best
// one; Auto picks the shift tables for GSM 7-bit.
type SplitRequest struct {
	Text   string           `json:"text"`
	Coding string           `json:"coding,omitempty"`
	Tables gsm7.ShiftTables `json:"tables"`
	Auto   bool             `json:"auto,omitempty"`
	Ref    *uint8           `json:"ref,omitempty"` // concatenation reference, random when unset
}

type SplitResponse struct {
	ID       string           `json:"id"`
	Coding   string           `json:"coding"`
	Tables   gsm7.ShiftTables `json:"tables"`
	Segments []SegmentInfo    `json:"segments"`
}

type SegmentInfo struct {
	Text    string `json:"text"`
	Header  string `json:"header,omitempty"` // hex
	Payload string `json:"payload"`          // hex
}

// TableInfo describes one national language for GET /api/tables.
type TableInfo struct {
	ID      int        `json:"id"`
	Name    gsm7.Table `json:"name"`
	Locking int        `json:"locking_characters"`
	Single  int        `json:"single_shift_characters"`
}
