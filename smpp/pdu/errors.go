package pdu

import (
	"errors"

	smpppdu "github.com/M2MGateway/go-smpp/pdu"
)

//goland:noinspection ALL
var (
	ErrUnknownDataCoding    = smpppdu.ErrUnknownDataCoding
	ErrDataTooLarge         = smpppdu.ErrDataTooLarge
	ErrShortMessageTooLarge = smpppdu.ErrShortMessageTooLarge
	ErrMultipartTooMuch     = errors.New("pdu: multipart sms too much (max 255 segments)")
	ErrInvalidHeader        = errors.New("pdu: malformed user data header")
)

const (
	// MaxShortMessage is the user data capacity of one SMS in octets.
	MaxShortMessage = 140
	// MaxPayload is the largest message_payload TLV value.
	MaxPayload = 0xFFFF
	// MaxSegments is the limit of an 8-bit concatenation reference.
	MaxSegments = 255
)
