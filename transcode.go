package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"msggw-gsm7/smpp/coding"
	"msggw-gsm7/smpp/coding/gsm7"
)

// ErrInvalidRequest marks errors caused by the caller's input.
var ErrInvalidRequest = errors.New("invalid request")

// Transcoder runs the conversion operations and reports each one to the
// metrics and record sinks.
type Transcoder struct {
	metrics *Metrics
	sinks   []RecordSink
}

func NewTranscoder(metrics *Metrics, sinks ...RecordSink) *Transcoder {
	return &Transcoder{metrics: metrics, sinks: sinks}
}

func (t *Transcoder) finish(rec ConversionRecord) {
	t.metrics.observe(rec)
	for _, sink := range t.sinks {
		sink.Record(rec)
	}
}

func (t *Transcoder) fail(logf *LoggingFormat, source string, err error) error {
	t.metrics.observeError(logf.Function, source)
	logf.Level = logrus.WarnLevel
	if !errors.Is(err, ErrInvalidRequest) {
		logf.Level = logrus.ErrorLevel
	}
	logf.Error = err
	logf.Print()
	return err
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidRequest}, args...)...)
}

func newRecord(id, op, source string, c coding.DataCoding, st gsm7.ShiftTables) ConversionRecord {
	return ConversionRecord{
		LogID:     id,
		Operation: op,
		Source:    source,
		Coding:    c.String(),
		Single:    st.Single.String(),
		Locking:   st.Locking.String(),
	}
}

// missedChars lists the distinct characters of src that st cannot encode.
func missedChars(src []uint16, st gsm7.ShiftTables) []string {
	var out []string
	seen := map[uint16]bool{}
	for _, cp := range src {
		if seen[cp] || st.Encodable(cp) {
			continue
		}
		seen[cp] = true
		out = append(out, string(rune(cp)))
	}
	return out
}

// Encode converts text to packed or unpacked GSM 7-bit.
func (t *Transcoder) Encode(req EncodeRequest, source string) (EncodeResponse, error) {
	id := uuid.NewString()
	logf := LoggingFormat{Type: LogType.Transcode, Function: "encode"}
	logf.AddField("logID", id)
	logf.AddField("source", source)

	cps := gsm7.CodePoints(req.Text)
	st := req.Tables
	if req.Auto {
		rank, _ := gsm7.Seek(cps)
		st = rank.Tables
	}
	if !st.Single.Valid() || !st.Locking.Valid() {
		return EncodeResponse{}, t.fail(&logf, source, invalid("unknown shift table %s", st))
	}

	septets := gsm7.EncodeSeptets(nil, cps, st)
	var payload []byte
	switch {
	case req.Unpacked:
		payload = make([]byte, septets)
		gsm7.EncodeSeptets(payload, cps, st)
	case req.CRPadding:
		payload = make([]byte, gsm7.EncodePadded(nil, cps, st))
		gsm7.EncodePadded(payload, cps, st)
	default:
		payload = make([]byte, gsm7.Encode(nil, cps, st))
		gsm7.Encode(payload, cps, st)
	}

	rank := gsm7.RankTables(cps, st)
	rec := newRecord(id, "encode", source, coding.GSM7BitCoding, st)
	rec.CodePoints = len(cps)
	rec.Octets = len(payload)
	rec.Missed = rank.Missed
	rec.Escapes = rank.Escapes
	rec.Sample = req.Text
	rec.MissedChars = missedChars(cps, st)
	t.finish(rec)

	logf.Level = logrus.DebugLevel
	logf.Message = "encoded"
	logf.AddField("tables", st.String())
	logf.AddField("octets", len(payload))
	logf.Print()

	return EncodeResponse{
		ID:      id,
		Tables:  st,
		Payload: hex.EncodeToString(payload),
		Octets:  len(payload),
		Septets: septets,
		Missed:  rec.MissedChars,
	}, nil
}

// Decode converts a hex payload in any supported data coding to text.
func (t *Transcoder) Decode(req DecodeRequest, source string) (DecodeResponse, error) {
	id := uuid.NewString()
	logf := LoggingFormat{Type: LogType.Transcode, Function: "decode"}
	logf.AddField("logID", id)
	logf.AddField("source", source)

	raw, err := hex.DecodeString(req.Payload)
	if err != nil {
		return DecodeResponse{}, t.fail(&logf, source, invalid("payload is not hex: %w", err))
	}
	c, err := coding.ParseDataCoding(req.Coding)
	if err != nil {
		return DecodeResponse{}, t.fail(&logf, source, invalid("%w", err))
	}

	st := req.Tables
	var header []byte
	if req.UDH {
		h, rest, err := coding.ParseHeader(raw)
		if err != nil {
			return DecodeResponse{}, t.fail(&logf, source, invalid("%w", err))
		}
		header, raw = raw[:len(raw)-len(rest)], rest
		if h.Tables != (gsm7.ShiftTables{}) {
			st = h.Tables
		}
	}

	var text string
	if c == coding.GSM7BitCoding {
		text = decodeGSM7(req, st, header, raw)
	} else {
		st = gsm7.ShiftTables{}
		if text, err = coding.Decode(c, st, raw); err != nil {
			return DecodeResponse{}, t.fail(&logf, source, invalid("%w", err))
		}
	}

	rec := newRecord(id, "decode", source, c, st)
	rec.CodePoints = len([]rune(text))
	rec.Octets = len(header) + len(raw)
	t.finish(rec)

	logf.Level = logrus.DebugLevel
	logf.Message = "decoded"
	logf.Print()

	return DecodeResponse{
		ID:         id,
		Coding:     c.String(),
		Tables:     st,
		Text:       text,
		CodePoints: rec.CodePoints,
	}, nil
}

func decodeGSM7(req DecodeRequest, st gsm7.ShiftTables, header, raw []byte) string {
	var cps []uint16
	switch {
	case req.Unpacked:
		cps = make([]uint16, gsm7.DecodeUnpacked(nil, raw, st))
		gsm7.DecodeUnpacked(cps, raw, st)
	case len(header) > 0:
		// packed text starts on the first septet boundary after the header
		all := append(header[:len(header):len(header)], raw...)
		septets := make([]byte, gsm7.Unpack(nil, all))
		gsm7.Unpack(septets, all)
		skip := (len(header)*8 + 6) / 7
		if skip > len(septets) {
			skip = len(septets)
		}
		cps = make([]uint16, gsm7.DecodeUnpacked(nil, septets[skip:], st))
		gsm7.DecodeUnpacked(cps, septets[skip:], st)
	case req.CRPadding:
		cps = make([]uint16, gsm7.DecodePadded(nil, raw, st))
		gsm7.DecodePadded(cps, raw, st)
	default:
		cps = make([]uint16, gsm7.Decode(nil, raw, st))
		gsm7.Decode(cps, raw, st)
	}
	return gsm7.FromCodePoints(cps)
}

// Seek reports the shift tables that represent text most cheaply.
func (t *Transcoder) Seek(req SeekRequest, source string) (SeekResponse, error) {
	id := uuid.NewString()
	cps := gsm7.CodePoints(req.Text)
	choice := coding.BestCoding(req.Text)
	rank := choice.Rank

	rec := newRecord(id, "seek", source, choice.Coding, rank.Tables)
	rec.Result = choice.Result.String()
	rec.CodePoints = len(cps)
	rec.Sample = req.Text
	if choice.Coding == coding.GSM7BitCoding {
		rec.Missed, rec.Escapes = rank.Missed, rank.Escapes
		rec.MissedChars = missedChars(cps, rank.Tables)
	}
	t.finish(rec)

	logf := LoggingFormat{Type: LogType.Transcode, Function: "seek", Level: logrus.DebugLevel}
	logf.AddField("logID", id)
	logf.AddField("result", rec.Result)
	logf.AddField("tables", rank.Tables.String())
	logf.Message = "seek finished"
	logf.Print()

	return SeekResponse{
		ID:      id,
		Coding:  choice.Coding.String(),
		Result:  rec.Result,
		Tables:  rank.Tables,
		Missed:  rank.Missed,
		Escapes: rank.Escapes,
		Score:   rank.Score(),
	}, nil
}

// Split segments text into SMS parts with their user data headers.
func (t *Transcoder) Split(req SplitRequest, source string) (SplitResponse, error) {
	id := uuid.NewString()
	logf := LoggingFormat{Type: LogType.Transcode, Function: "split"}
	logf.AddField("logID", id)
	logf.AddField("source", source)

	var c coding.DataCoding
	st := req.Tables
	if req.Coding == "" {
		choice := coding.BestCoding(req.Text)
		c, st = choice.Coding, choice.Rank.Tables
	} else {
		var err error
		if c, err = coding.ParseDataCoding(req.Coding); err != nil {
			return SplitResponse{}, t.fail(&logf, source, invalid("%w", err))
		}
		if req.Auto {
			rank, _ := gsm7.Seek(gsm7.CodePoints(req.Text))
			st = rank.Tables
		}
	}
	if c != coding.GSM7BitCoding {
		st = gsm7.ShiftTables{}
	}
	if !st.Single.Valid() || !st.Locking.Valid() {
		return SplitResponse{}, t.fail(&logf, source, invalid("unknown shift table %s", st))
	}

	ref := uuid.New()[0]
	if req.Ref != nil {
		ref = *req.Ref
	}
	segments, err := coding.Segments(req.Text, c, st, ref)
	if err != nil {
		return SplitResponse{}, t.fail(&logf, source, invalid("%w", err))
	}

	resp := SplitResponse{ID: id, Coding: c.String(), Tables: st}
	octets := 0
	for _, s := range segments {
		resp.Segments = append(resp.Segments, SegmentInfo{
			Text:    s.Text,
			Header:  hex.EncodeToString(s.Header),
			Payload: hex.EncodeToString(s.Payload),
		})
		octets += len(s.Header) + len(s.Payload)
	}

	cps := gsm7.CodePoints(req.Text)
	rec := newRecord(id, "split", source, c, st)
	rec.CodePoints = len(cps)
	rec.Octets = octets
	rec.Segments = len(segments)
	if c == coding.GSM7BitCoding {
		rank := gsm7.RankTables(cps, st)
		rec.Missed, rec.Escapes = rank.Missed, rank.Escapes
		rec.MissedChars = missedChars(cps, st)
	}
	rec.Sample = req.Text
	t.finish(rec)

	logf.Level = logrus.DebugLevel
	logf.Message = "split"
	logf.AddField("segments", len(segments))
	logf.Print()
	return resp, nil
}

// tableInfo lists every national language with the size of its alphabets.
func tableInfo() []TableInfo {
	out := make([]TableInfo, 0, len(gsm7.Tables()))
	for _, table := range gsm7.Tables() {
		out = append(out, TableInfo{
			ID:      int(table),
			Name:    table,
			Locking: len(gsm7.LockingTable(table).Mappings()),
			Single:  len(gsm7.SingleShiftTable(table).Mappings()),
		})
	}
	return out
}
