package gsm7

// Alphabets from 3GPP TS 23.038 Annex A. A zero slot is unmapped; slot 0x1B
// is always the escape septet.

var lockingData = [numTables]*[128]uint16{
	Default:    &defaultLocking,
	Turkish:    &turkishLocking,
	Spanish:    &defaultLocking,
	Portuguese: &portugueseLocking,
	Bengali:    &bengaliLocking,
	Gujarati:   &gujaratiLocking,
	Hindi:      &hindiLocking,
	Kannada:    &kannadaLocking,
	Malayalam:  &malayalamLocking,
	Oriya:      &oriyaLocking,
	Punjabi:    &punjabiLocking,
	Tamil:      &tamilLocking,
	Telugu:     &teluguLocking,
	Urdu:       &urduLocking,
}

var singleShiftData = [numTables]*[128]uint16{
	Default:    &defaultSingleShift,
	Turkish:    &turkishSingleShift,
	Spanish:    &spanishSingleShift,
	Portuguese: &portugueseSingleShift,
	Bengali:    &bengaliSingleShift,
	Gujarati:   &gujaratiSingleShift,
	Hindi:      &hindiSingleShift,
	Kannada:    &kannadaSingleShift,
	Malayalam:  &malayalamSingleShift,
	Oriya:      &oriyaSingleShift,
	Punjabi:    &punjabiSingleShift,
	Tamil:      &tamilSingleShift,
	Telugu:     &teluguSingleShift,
	Urdu:       &urduSingleShift,
}

var defaultLocking = [128]uint16{
	0x0040, 0x00A3, 0x0024, 0x00A5, 0x00E8, 0x00E9, 0x00F9, 0x00EC, // 0x00
	0x00F2, 0x00C7, 0x000A, 0x00D8, 0x00F8, 0x000D, 0x00C5, 0x00E5, // 0x08
	0x0394, 0x005F, 0x03A6, 0x0393, 0x039B, 0x03A9, 0x03A0, 0x03A8, // 0x10
	0x03A3, 0x0398, 0x039E, 0x0000, 0x00C6, 0x00E6, 0x00DF, 0x00C9, // 0x18
	0x0020, 0x0021, 0x0022, 0x0023, 0x00A4, 0x0025, 0x0026, 0x0027, // 0x20
	0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F, // 0x38
	0x00A1, 0x0041, 0x0042, 0x0043, 0x0044, 0x0045, 0x0046, 0x0047, // 0x40
	0x0048, 0x0049, 0x004A, 0x004B, 0x004C, 0x004D, 0x004E, 0x004F, // 0x48
	0x0050, 0x0051, 0x0052, 0x0053, 0x0054, 0x0055, 0x0056, 0x0057, // 0x50
	0x0058, 0x0059, 0x005A, 0x00C4, 0x00D6, 0x00D1, 0x00DC, 0x00A7, // 0x58
	0x00BF, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x00E4, 0x00F6, 0x00F1, 0x00FC, 0x00E0, // 0x78
}

var turkishLocking = [128]uint16{
	0x0040, 0x00A3, 0x0024, 0x00A5, 0x20AC, 0x00E9, 0x00F9, 0x0131, // 0x00
	0x00F2, 0x00C7, 0x000A, 0x011E, 0x011F, 0x000D, 0x00C5, 0x00E5, // 0x08
	0x0394, 0x005F, 0x03A6, 0x0393, 0x039B, 0x03A9, 0x03A0, 0x03A8, // 0x10
	0x03A3, 0x0398, 0x039E, 0x0000, 0x015E, 0x015F, 0x00DF, 0x00C9, // 0x18
	0x0020, 0x0021, 0x0022, 0x0023, 0x00A4, 0x0025, 0x0026, 0x0027, // 0x20
	0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F, // 0x38
	0x0130, 0x0041, 0x0042, 0x0043, 0x0044, 0x0045, 0x0046, 0x0047, // 0x40
	0x0048, 0x0049, 0x004A, 0x004B, 0x004C, 0x004D, 0x004E, 0x004F, // 0x48
	0x0050, 0x0051, 0x0052, 0x0053, 0x0054, 0x0055, 0x0056, 0x0057, // 0x50
	0x0058, 0x0059, 0x005A, 0x00C4, 0x00D6, 0x00D1, 0x00DC, 0x00A7, // 0x58
	0x00E7, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x00E4, 0x00F6, 0x00F1, 0x00FC, 0x00E0, // 0x78
}

var portugueseLocking = [128]uint16{
	0x0040, 0x00A3, 0x0024, 0x00A5, 0x00EA, 0x00E9, 0x00FA, 0x00ED, // 0x00
	0x00F3, 0x00E7, 0x000A, 0x00D4, 0x00F4, 0x000D, 0x00C1, 0x00E1, // 0x08
	0x0394, 0x005F, 0x00AA, 0x00C7, 0x00C0, 0x221E, 0x005E, 0x005C, // 0x10
	0x20AC, 0x00D3, 0x007C, 0x0000, 0x00C2, 0x00E2, 0x00CA, 0x00C9, // 0x18
	0x0020, 0x0021, 0x0022, 0x0023, 0x00BA, 0x0025, 0x0026, 0x0027, // 0x20
	0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F, // 0x38
	0x00CD, 0x0041, 0x0042, 0x0043, 0x0044, 0x0045, 0x0046, 0x0047, // 0x40
	0x0048, 0x0049, 0x004A, 0x004B, 0x004C, 0x004D, 0x004E, 0x004F, // 0x48
	0x0050, 0x0051, 0x0052, 0x0053, 0x0054, 0x0055, 0x0056, 0x0057, // 0x50
	0x0058, 0x0059, 0x005A, 0x00C3, 0x00D5, 0x00DA, 0x00DC, 0x00A7, // 0x58
	0x007E, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x00E3, 0x00F5, 0x0060, 0x00FC, 0x00E0, // 0x78
}

var bengaliLocking = [128]uint16{
	0x0981, 0x0982, 0x0983, 0x0985, 0x0986, 0x0987, 0x0988, 0x0989, // 0x00
	0x098A, 0x098B, 0x000A, 0x098C, 0x0000, 0x000D, 0x0000, 0x098F, // 0x08
	0x0990, 0x0000, 0x0000, 0x0993, 0x0994, 0x0995, 0x0996, 0x0997, // 0x10
	0x0998, 0x0999, 0x099A, 0x0000, 0x099B, 0x099C, 0x099D, 0x099E, // 0x18
	0x0020, 0x0021, 0x099F, 0x09A0, 0x09A1, 0x09A2, 0x09A3, 0x09A4, // 0x20
	0x0029, 0x0028, 0x09A5, 0x09A6, 0x002C, 0x09A7, 0x002E, 0x09A8, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x0000, 0x09AA, 0x09AB, 0x003F, // 0x38
	0x09AC, 0x09AD, 0x09AE, 0x09AF, 0x09B0, 0x0000, 0x09B2, 0x0000, // 0x40
	0x0000, 0x0000, 0x09B6, 0x09B7, 0x09B8, 0x09B9, 0x09BC, 0x09BD, // 0x48
	0x09BE, 0x09BF, 0x09C0, 0x09C1, 0x09C2, 0x09C3, 0x09C4, 0x0000, // 0x50
	0x0000, 0x09C7, 0x09C8, 0x0000, 0x0000, 0x09CB, 0x09CC, 0x09CD, // 0x58
	0x09CE, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x09D7, 0x09DC, 0x09DD, 0x09F0, 0x09F1, // 0x78
}

var gujaratiLocking = [128]uint16{
	0x0A81, 0x0A82, 0x0A83, 0x0A85, 0x0A86, 0x0A87, 0x0A88, 0x0A89, // 0x00
	0x0A8A, 0x0A8B, 0x000A, 0x0A8C, 0x0A8D, 0x000D, 0x0000, 0x0A8F, // 0x08
	0x0A90, 0x0A91, 0x0000, 0x0A93, 0x0A94, 0x0A95, 0x0A96, 0x0A97, // 0x10
	0x0A98, 0x0A99, 0x0A9A, 0x0000, 0x0A9B, 0x0A9C, 0x0A9D, 0x0A9E, // 0x18
	0x0020, 0x0021, 0x0A9F, 0x0AA0, 0x0AA1, 0x0AA2, 0x0AA3, 0x0AA4, // 0x20
	0x0029, 0x0028, 0x0AA5, 0x0AA6, 0x002C, 0x0AA7, 0x002E, 0x0AA8, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x0000, 0x0AAA, 0x0AAB, 0x003F, // 0x38
	0x0AAC, 0x0AAD, 0x0AAE, 0x0AAF, 0x0AB0, 0x0000, 0x0AB2, 0x0AB3, // 0x40
	0x0000, 0x0AB5, 0x0AB6, 0x0AB7, 0x0AB8, 0x0AB9, 0x0ABC, 0x0ABD, // 0x48
	0x0ABE, 0x0ABF, 0x0AC0, 0x0AC1, 0x0AC2, 0x0AC3, 0x0AC4, 0x0AC5, // 0x50
	0x0000, 0x0AC7, 0x0AC8, 0x0AC9, 0x0000, 0x0ACB, 0x0ACC, 0x0ACD, // 0x58
	0x0AD0, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x0AE0, 0x0AE1, 0x0AE2, 0x0AE3, 0x0AF1, // 0x78
}

var hindiLocking = [128]uint16{
	0x0901, 0x0902, 0x0903, 0x0905, 0x0906, 0x0907, 0x0908, 0x0909, // 0x00
	0x090A, 0x090B, 0x000A, 0x090C, 0x090D, 0x000D, 0x090E, 0x090F, // 0x08
	0x0910, 0x0911, 0x0912, 0x0913, 0x0914, 0x0915, 0x0916, 0x0917, // 0x10
	0x0918, 0x0919, 0x091A, 0x0000, 0x091B, 0x091C, 0x091D, 0x091E, // 0x18
	0x0020, 0x0021, 0x091F, 0x0920, 0x0921, 0x0922, 0x0923, 0x0924, // 0x20
	0x0029, 0x0028, 0x0925, 0x0926, 0x002C, 0x0927, 0x002E, 0x0928, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x0929, 0x092A, 0x092B, 0x003F, // 0x38
	0x092C, 0x092D, 0x092E, 0x092F, 0x0930, 0x0931, 0x0932, 0x0933, // 0x40
	0x0934, 0x0935, 0x0936, 0x0937, 0x0938, 0x0939, 0x093C, 0x093D, // 0x48
	0x093E, 0x093F, 0x0940, 0x0941, 0x0942, 0x0943, 0x0944, 0x0945, // 0x50
	0x0946, 0x0947, 0x0948, 0x0949, 0x094A, 0x094B, 0x094C, 0x094D, // 0x58
	0x0950, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x0972, 0x097B, 0x097C, 0x097E, 0x097F, // 0x78
}

var kannadaLocking = [128]uint16{
	0x0000, 0x0C82, 0x0C83, 0x0C85, 0x0C86, 0x0C87, 0x0C88, 0x0C89, // 0x00
	0x0C8A, 0x0C8B, 0x000A, 0x0C8C, 0x0000, 0x000D, 0x0C8E, 0x0C8F, // 0x08
	0x0C90, 0x0000, 0x0C92, 0x0C93, 0x0C94, 0x0C95, 0x0C96, 0x0C97, // 0x10
	0x0C98, 0x0C99, 0x0C9A, 0x0000, 0x0C9B, 0x0C9C, 0x0C9D, 0x0C9E, // 0x18
	0x0020, 0x0021, 0x0C9F, 0x0CA0, 0x0CAA, 0x0CA2, 0x0CA3, 0x0CA4, // 0x20
	0x0029, 0x0028, 0x0CA5, 0x0CA6, 0x002C, 0x0CA7, 0x002E, 0x0CA8, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x0000, 0x0CAA, 0x0CAB, 0x003F, // 0x38
	0x0CAC, 0x0CAD, 0x0CAE, 0x0CAF, 0x0CB0, 0x0CB1, 0x0CB2, 0x0CB3, // 0x40
	0x0000, 0x0CB5, 0x0CB6, 0x0CB7, 0x0CB8, 0x0CB9, 0x0CBC, 0x0CBD, // 0x48
	0x0CBE, 0x0CBF, 0x0CC0, 0x0CC1, 0x0CC2, 0x0CC3, 0x0CC4, 0x0000, // 0x50
	0x0CC6, 0x0CC7, 0x0CC8, 0x0000, 0x0CCA, 0x0CCB, 0x0CCC, 0x0CCD, // 0x58
	0x0CD5, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x0CD6, 0x0CE0, 0x0CE1, 0x0CE2, 0x0CE3, // 0x78
}

var malayalamLocking = [128]uint16{
	0x0000, 0x0D02, 0x0D03, 0x0D05, 0x0D06, 0x0D07, 0x0D08, 0x0D09, // 0x00
	0x0D0A, 0x0D0B, 0x000A, 0x0D0C, 0x0000, 0x000D, 0x0D0E, 0x0D0F, // 0x08
	0x0D10, 0x0000, 0x0D12, 0x0D13, 0x0D14, 0x0D15, 0x0D16, 0x0D17, // 0x10
	0x0D18, 0x0D19, 0x0D1A, 0x0000, 0x0D1B, 0x0D1C, 0x0D1D, 0x0D1E, // 0x18
	0x0020, 0x0021, 0x0D1F, 0x0D20, 0x0D21, 0x0D22, 0x0D23, 0x0D24, // 0x20
	0x0029, 0x0028, 0x0D25, 0x0D26, 0x002C, 0x0D27, 0x002E, 0x0D28, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x0000, 0x0D2A, 0x0D2B, 0x003F, // 0x38
	0x0D2C, 0x0D2D, 0x0D2E, 0x0D2F, 0x0D30, 0x0D31, 0x0D32, 0x0D33, // 0x40
	0x0D34, 0x0D35, 0x0D36, 0x0D37, 0x0D38, 0x0D39, 0x0000, 0x0D3D, // 0x48
	0x0D3E, 0x0D3F, 0x0D40, 0x0D41, 0x0D42, 0x0D43, 0x0D44, 0x0000, // 0x50
	0x0D46, 0x0D47, 0x0D48, 0x0000, 0x0D4A, 0x0D4B, 0x0D4C, 0x0D4D, // 0x58
	0x0D57, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x0D60, 0x0D61, 0x0D62, 0x0D63, 0x0D79, // 0x78
}

var oriyaLocking = [128]uint16{
	0x0B01, 0x0B02, 0x0B03, 0x0B05, 0x0B06, 0x0B07, 0x0B08, 0x0B09, // 0x00
	0x0B0A, 0x0B0B, 0x000A, 0x0B0C, 0x0000, 0x000D, 0x0000, 0x0B0F, // 0x08
	0x0B10, 0x0000, 0x0000, 0x0B13, 0x0B14, 0x0B15, 0x0B16, 0x0B17, // 0x10
	0x0B18, 0x0B19, 0x0B1A, 0x0000, 0x0B1B, 0x0B1C, 0x0B1D, 0x0B1E, // 0x18
	0x0020, 0x0021, 0x0B1F, 0x0B20, 0x0B21, 0x0B22, 0x0B23, 0x0B24, // 0x20
	0x0029, 0x0028, 0x0B25, 0x0B26, 0x002C, 0x0B27, 0x002E, 0x0B28, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x0000, 0x0B2A, 0x0B2B, 0x003F, // 0x38
	0x0B2C, 0x0B2D, 0x0B2E, 0x0B2F, 0x0B30, 0x0000, 0x0B32, 0x0B33, // 0x40
	0x0000, 0x0B35, 0x0B36, 0x0B37, 0x0B38, 0x0B39, 0x0B3C, 0x0B3D, // 0x48
	0x0B3E, 0x0B3F, 0x0B40, 0x0B41, 0x0B42, 0x0B43, 0x0B44, 0x0000, // 0x50
	0x0000, 0x0B47, 0x0B48, 0x0000, 0x0000, 0x0B4B, 0x0B4C, 0x0B4D, // 0x58
	0x0B56, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x0B57, 0x0B60, 0x0B61, 0x0B62, 0x0B63, // 0x78
}

var punjabiLocking = [128]uint16{
	0x0A01, 0x0A02, 0x0A03, 0x0A05, 0x0A06, 0x0A07, 0x0A08, 0x0A09, // 0x00
	0x0A0A, 0x0000, 0x000A, 0x0000, 0x0000, 0x000D, 0x0000, 0x0A0F, // 0x08
	0x0A10, 0x0000, 0x0000, 0x0A13, 0x0A14, 0x0A15, 0x0A16, 0x0A17, // 0x10
	0x0A18, 0x0A19, 0x0A1A, 0x0000, 0x0A1B, 0x0A1C, 0x0A1D, 0x0A1E, // 0x18
	0x0020, 0x0021, 0x0A1F, 0x0A20, 0x0A21, 0x0A22, 0x0A23, 0x0A24, // 0x20
	0x0029, 0x0028, 0x0A25, 0x0A26, 0x002C, 0x0A27, 0x002E, 0x0A28, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x0000, 0x0A2A, 0x0A2B, 0x003F, // 0x38
	0x0A2C, 0x0A2D, 0x0A2E, 0x0A2F, 0x0A30, 0x0000, 0x0A32, 0x0A33, // 0x40
	0x0000, 0x0A35, 0x0A36, 0x0000, 0x0A38, 0x0A39, 0x0A3C, 0x0000, // 0x48
	0x0A3E, 0x0A3F, 0x0A40, 0x0A41, 0x0A42, 0x0000, 0x0000, 0x0000, // 0x50
	0x0000, 0x0A47, 0x0A48, 0x0000, 0x0000, 0x0A4B, 0x0A4C, 0x0A4D, // 0x58
	0x0A70, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x0A59, 0x0A5A, 0x0A5B, 0x0A5C, 0x0A5E, // 0x78
}

var tamilLocking = [128]uint16{
	0x0000, 0x0B82, 0x0B83, 0x0B85, 0x0B86, 0x0B87, 0x0B88, 0x0B89, // 0x00
	0x0B8A, 0x0000, 0x000A, 0x0000, 0x0000, 0x000D, 0x0B8E, 0x0B8F, // 0x08
	0x0B90, 0x0000, 0x0B92, 0x0B93, 0x0B94, 0x0B95, 0x0000, 0x0000, // 0x10
	0x0000, 0x0B99, 0x0B9A, 0x0000, 0x0000, 0x0B9C, 0x0000, 0x0B9E, // 0x18
	0x0020, 0x0021, 0x0B9F, 0x0000, 0x0000, 0x0000, 0x0BA3, 0x0BA4, // 0x20
	0x0029, 0x0028, 0x0000, 0x0000, 0x002C, 0x0000, 0x002E, 0x0BA8, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x0BA9, 0x0BAA, 0x0000, 0x003F, // 0x38
	0x0000, 0x0000, 0x0BAE, 0x0BAF, 0x0BB0, 0x0BB1, 0x0BB2, 0x0BB3, // 0x40
	0x0BB4, 0x0BB5, 0x0BB6, 0x0BB7, 0x0BB8, 0x0BB9, 0x0000, 0x0000, // 0x48
	0x0BBE, 0x0BBF, 0x0BC0, 0x0BC1, 0x0BC2, 0x0000, 0x0000, 0x0000, // 0x50
	0x0BC6, 0x0BC7, 0x0BC8, 0x0000, 0x0BCA, 0x0BCB, 0x0BCC, 0x0BCD, // 0x58
	0x0BD0, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x0BD7, 0x0BF0, 0x0BF1, 0x0BF2, 0x0BF9, // 0x78
}

var teluguLocking = [128]uint16{
	0x0C01, 0x0C02, 0x0C03, 0x0C05, 0x0C06, 0x0C07, 0x0C08, 0x0C09, // 0x00
	0x0C0A, 0x0C0B, 0x000A, 0x0C0C, 0x0000, 0x000D, 0x0C0E, 0x0C0F, // 0x08
	0x0C10, 0x0000, 0x0C12, 0x0C13, 0x0C14, 0x0C15, 0x0C16, 0x0C17, // 0x10
	0x0C18, 0x0C19, 0x0C1A, 0x0000, 0x0C1B, 0x0C1C, 0x0C1D, 0x0C1E, // 0x18
	0x0020, 0x0021, 0x0C1F, 0x0C20, 0x0C21, 0x0C22, 0x0C23, 0x0C24, // 0x20
	0x0029, 0x0028, 0x0C25, 0x0C26, 0x002C, 0x0C27, 0x002E, 0x0C28, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x0000, 0x0C2A, 0x0C2B, 0x003F, // 0x38
	0x0C2C, 0x0C2D, 0x0C2E, 0x0C2F, 0x0C30, 0x0C31, 0x0C32, 0x0C33, // 0x40
	0x0000, 0x0C35, 0x0C36, 0x0C37, 0x0C38, 0x0C39, 0x0000, 0x0C3D, // 0x48
	0x0C3E, 0x0C3F, 0x0C40, 0x0C41, 0x0C42, 0x0C43, 0x0C44, 0x0000, // 0x50
	0x0C46, 0x0C47, 0x0C48, 0x0000, 0x0C4A, 0x0C4B, 0x0C4C, 0x0C4D, // 0x58
	0x0C55, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x0C56, 0x0C60, 0x0C61, 0x0C62, 0x0C63, // 0x78
}

var urduLocking = [128]uint16{
	0x0627, 0x0622, 0x0628, 0x067B, 0x0680, 0x067E, 0x06A6, 0x062A, // 0x00
	0x06C2, 0x067F, 0x000A, 0x0679, 0x067D, 0x000D, 0x067A, 0x067C, // 0x08
	0x062B, 0x062C, 0x0681, 0x0684, 0x0683, 0x0685, 0x0686, 0x0687, // 0x10
	0x062D, 0x062E, 0x062F, 0x0000, 0x068C, 0x0688, 0x0689, 0x068A, // 0x18
	0x0020, 0x0021, 0x068F, 0x068D, 0x0630, 0x0631, 0x0691, 0x0693, // 0x20
	0x0029, 0x0028, 0x0699, 0x0632, 0x002C, 0x0696, 0x002E, 0x0698, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x069A, 0x0633, 0x0634, 0x003F, // 0x38
	0x0635, 0x0636, 0x0637, 0x0638, 0x0639, 0x0641, 0x0642, 0x06A9, // 0x40
	0x06AA, 0x06AB, 0x06AF, 0x06B3, 0x06B1, 0x0644, 0x0645, 0x0646, // 0x48
	0x06BA, 0x06BB, 0x06BC, 0x0648, 0x06C4, 0x06D5, 0x06C1, 0x06BE, // 0x50
	0x0621, 0x06CC, 0x06D0, 0x06D2, 0x064D, 0x0650, 0x064F, 0x0657, // 0x58
	0x0654, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x0655, 0x0651, 0x0653, 0x0656, 0x0670, // 0x78
}

var defaultSingleShift = [128]uint16{
	0x0A: 0x000C, 0x14: 0x005E, 0x28: 0x007B, 0x29: 0x007D, 0x2F: 0x005C, 0x3C: 0x005B,
	0x3D: 0x007E, 0x3E: 0x005D, 0x40: 0x007C, 0x65: 0x20AC,
}

var turkishSingleShift = [128]uint16{
	0x0A: 0x000C, 0x14: 0x005E, 0x28: 0x007B, 0x29: 0x007D, 0x2F: 0x005C, 0x3C: 0x005B,
	0x3D: 0x007E, 0x3E: 0x005D, 0x40: 0x007C, 0x47: 0x011E, 0x49: 0x0130, 0x53: 0x015E,
	0x63: 0x00E7, 0x65: 0x20AC, 0x67: 0x011F, 0x69: 0x0131, 0x73: 0x015F,
}

var spanishSingleShift = [128]uint16{
	0x09: 0x00E7, 0x0A: 0x000C, 0x14: 0x005E, 0x28: 0x007B, 0x29: 0x007D, 0x2F: 0x005C,
	0x3C: 0x005B, 0x3D: 0x007E, 0x3E: 0x005D, 0x40: 0x007C, 0x41: 0x00C1, 0x49: 0x00CD,
	0x4F: 0x00D3, 0x55: 0x00DA, 0x61: 0x00E1, 0x65: 0x20AC, 0x69: 0x00ED, 0x6F: 0x00F3,
	0x75: 0x00FA,
}

var portugueseSingleShift = [128]uint16{
	0x05: 0x00EA, 0x09: 0x00E7, 0x0A: 0x000C, 0x0B: 0x00D4, 0x0C: 0x00F4, 0x0E: 0x00C1,
	0x0F: 0x00E1, 0x12: 0x03A6, 0x13: 0x0393, 0x14: 0x005E, 0x15: 0x03A9, 0x16: 0x03A0,
	0x17: 0x03A8, 0x18: 0x03A3, 0x19: 0x0398, 0x1F: 0x00CA, 0x28: 0x007B, 0x29: 0x007D,
	0x2F: 0x005C, 0x3C: 0x005B, 0x3D: 0x007E, 0x3E: 0x005D, 0x40: 0x007C, 0x41: 0x00C0,
	0x49: 0x00CD, 0x4F: 0x00D3, 0x55: 0x00DA, 0x5B: 0x00C3, 0x5C: 0x00D5, 0x61: 0x00C2,
	0x65: 0x20AC, 0x69: 0x00ED, 0x6F: 0x00F3, 0x75: 0x00FA, 0x7B: 0x00E3, 0x7C: 0x00F5,
	0x7F: 0x00E2,
}

var bengaliSingleShift = [128]uint16{
	0x00: 0x0040, 0x01: 0x00A3, 0x02: 0x0024, 0x03: 0x00A5, 0x04: 0x00BF, 0x05: 0x0022,
	0x06: 0x00A4, 0x07: 0x0025, 0x08: 0x0026, 0x09: 0x0027, 0x0A: 0x000C, 0x0B: 0x002A,
	0x0C: 0x002B, 0x0E: 0x002D, 0x0F: 0x002F, 0x10: 0x003C, 0x11: 0x003D, 0x12: 0x003E,
	0x13: 0x00A1, 0x14: 0x005E, 0x15: 0x00A1, 0x16: 0x005F, 0x17: 0x0023, 0x18: 0x002A,
	0x19: 0x0964, 0x1A: 0x0965, 0x1C: 0x09E6, 0x1D: 0x09E7, 0x1E: 0x09E8, 0x1F: 0x09E9,
	0x20: 0x09EA, 0x21: 0x09EB, 0x22: 0x09EC, 0x23: 0x09ED, 0x24: 0x09EE, 0x25: 0x09EF,
	0x26: 0x09DF, 0x27: 0x09E0, 0x28: 0x007B, 0x29: 0x007D, 0x2A: 0x09E1, 0x2B: 0x09E2,
	0x2C: 0x09E3, 0x2D: 0x09F2, 0x2E: 0x09F3, 0x2F: 0x005C, 0x30: 0x09F4, 0x31: 0x09F5,
	0x32: 0x09F6, 0x33: 0x09F7, 0x34: 0x09F8, 0x35: 0x09F9, 0x36: 0x09FA, 0x3C: 0x005B,
	0x3D: 0x007E, 0x3E: 0x005D, 0x40: 0x007C, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043,
	0x44: 0x0044, 0x45: 0x0045, 0x46: 0x0046, 0x47: 0x0047, 0x48: 0x0048, 0x49: 0x0049,
	0x4A: 0x004A, 0x4B: 0x004B, 0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F,
	0x50: 0x0050, 0x51: 0x0051, 0x52: 0x0052, 0x53: 0x0053, 0x54: 0x0054, 0x55: 0x0055,
	0x56: 0x0056, 0x57: 0x0057, 0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x65: 0x20AC,
}

var gujaratiSingleShift = [128]uint16{
	0x00: 0x0040, 0x01: 0x00A3, 0x02: 0x0024, 0x03: 0x00A5, 0x04: 0x00BF, 0x05: 0x0022,
	0x06: 0x00A4, 0x07: 0x0025, 0x08: 0x0026, 0x09: 0x0027, 0x0A: 0x000C, 0x0B: 0x002A,
	0x0C: 0x002B, 0x0E: 0x002D, 0x0F: 0x002F, 0x10: 0x003C, 0x11: 0x003D, 0x12: 0x003E,
	0x13: 0x00A1, 0x14: 0x005E, 0x15: 0x00A1, 0x16: 0x005F, 0x17: 0x0023, 0x18: 0x002A,
	0x19: 0x0964, 0x1A: 0x0965, 0x1C: 0x0AE6, 0x1D: 0x0AE7, 0x1E: 0x0AE8, 0x1F: 0x0AE9,
	0x20: 0x0AEA, 0x21: 0x0AEB, 0x22: 0x0AEC, 0x23: 0x0AED, 0x24: 0x0AEE, 0x25: 0x0AEF,
	0x28: 0x007B, 0x29: 0x007D, 0x2F: 0x005C, 0x3C: 0x005B, 0x3D: 0x007E, 0x3E: 0x005D,
	0x40: 0x007C, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043, 0x44: 0x0044, 0x45: 0x0045,
	0x46: 0x0046, 0x47: 0x0047, 0x48: 0x0048, 0x49: 0x0049, 0x4A: 0x004A, 0x4B: 0x004B,
	0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F, 0x50: 0x0050, 0x51: 0x0051,
	0x52: 0x0052, 0x53: 0x0053, 0x54: 0x0054, 0x55: 0x0055, 0x56: 0x0056, 0x57: 0x0057,
	0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x65: 0x20AC,
}

var hindiSingleShift = [128]uint16{
	0x00: 0x0040, 0x01: 0x00A3, 0x02: 0x0024, 0x03: 0x00A5, 0x04: 0x00BF, 0x05: 0x0022,
	0x06: 0x00A4, 0x07: 0x0025, 0x08: 0x0026, 0x09: 0x0027, 0x0A: 0x000C, 0x0B: 0x002A,
	0x0C: 0x002B, 0x0E: 0x002D, 0x0F: 0x002F, 0x10: 0x003C, 0x11: 0x003D, 0x12: 0x003E,
	0x13: 0x00A1, 0x14: 0x005E, 0x15: 0x00A1, 0x16: 0x005F, 0x17: 0x0023, 0x18: 0x002A,
	0x19: 0x0964, 0x1A: 0x0965, 0x1C: 0x0966, 0x1D: 0x0967, 0x1E: 0x0968, 0x1F: 0x0969,
	0x20: 0x096A, 0x21: 0x096B, 0x22: 0x096C, 0x23: 0x096D, 0x24: 0x096E, 0x25: 0x096F,
	0x26: 0x0951, 0x27: 0x0952, 0x28: 0x007B, 0x29: 0x007D, 0x2A: 0x0953, 0x2B: 0x0954,
	0x2C: 0x0958, 0x2D: 0x0959, 0x2E: 0x095A, 0x2F: 0x005C, 0x30: 0x095B, 0x31: 0x095C,
	0x32: 0x095D, 0x33: 0x095E, 0x34: 0x095F, 0x35: 0x0960, 0x36: 0x0961, 0x37: 0x0962,
	0x38: 0x0963, 0x39: 0x0970, 0x3A: 0x0971, 0x3C: 0x005B, 0x3D: 0x007E, 0x3E: 0x005D,
	0x40: 0x007C, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043, 0x44: 0x0044, 0x45: 0x0045,
	0x46: 0x0046, 0x47: 0x0047, 0x48: 0x0048, 0x49: 0x0049, 0x4A: 0x004A, 0x4B: 0x004B,
	0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F, 0x50: 0x0050, 0x51: 0x0051,
	0x52: 0x0052, 0x53: 0x0053, 0x54: 0x0054, 0x55: 0x0055, 0x56: 0x0056, 0x57: 0x0057,
	0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x65: 0x20AC,
}

var kannadaSingleShift = [128]uint16{
	0x00: 0x0040, 0x01: 0x00A3, 0x02: 0x0024, 0x03: 0x00A5, 0x04: 0x00BF, 0x05: 0x0022,
	0x06: 0x00A4, 0x07: 0x0025, 0x08: 0x0026, 0x09: 0x0027, 0x0A: 0x000C, 0x0B: 0x002A,
	0x0C: 0x002B, 0x0E: 0x002D, 0x0F: 0x002F, 0x10: 0x003C, 0x11: 0x003D, 0x12: 0x003E,
	0x13: 0x00A1, 0x14: 0x005E, 0x15: 0x00A1, 0x16: 0x005F, 0x17: 0x0023, 0x18: 0x002A,
	0x19: 0x0964, 0x1A: 0x0965, 0x1C: 0x0CE6, 0x1D: 0x0CE7, 0x1E: 0x0CE8, 0x1F: 0x0CE9,
	0x20: 0x0CEA, 0x21: 0x0CEB, 0x22: 0x0CEC, 0x23: 0x0CED, 0x24: 0x0CEE, 0x25: 0x0CEF,
	0x26: 0x0CDE, 0x27: 0x0CF1, 0x28: 0x007B, 0x29: 0x007D, 0x2A: 0x0CF2, 0x2F: 0x005C,
	0x3C: 0x005B, 0x3D: 0x007E, 0x3E: 0x005D, 0x40: 0x007C, 0x41: 0x0041, 0x42: 0x0042,
	0x43: 0x0043, 0x44: 0x0044, 0x45: 0x0045, 0x46: 0x0046, 0x47: 0x0047, 0x48: 0x0048,
	0x49: 0x0049, 0x4A: 0x004A, 0x4B: 0x004B, 0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E,
	0x4F: 0x004F, 0x50: 0x0050, 0x51: 0x0051, 0x52: 0x0052, 0x53: 0x0053, 0x54: 0x0054,
	0x55: 0x0055, 0x56: 0x0056, 0x57: 0x0057, 0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A,
	0x65: 0x20AC,
}

var malayalamSingleShift = [128]uint16{
	0x00: 0x0040, 0x01: 0x00A3, 0x02: 0x0024, 0x03: 0x00A5, 0x04: 0x00BF, 0x05: 0x0022,
	0x06: 0x00A4, 0x07: 0x0025, 0x08: 0x0026, 0x09: 0x0027, 0x0A: 0x000C, 0x0B: 0x002A,
	0x0C: 0x002B, 0x0E: 0x002D, 0x0F: 0x002F, 0x10: 0x003C, 0x11: 0x003D, 0x12: 0x003E,
	0x13: 0x00A1, 0x14: 0x005E, 0x15: 0x00A1, 0x16: 0x005F, 0x17: 0x0023, 0x18: 0x002A,
	0x19: 0x0964, 0x1A: 0x0965, 0x1C: 0x0D66, 0x1D: 0x0D67, 0x1E: 0x0D68, 0x1F: 0x0D69,
	0x20: 0x0D6A, 0x21: 0x0D6B, 0x22: 0x0D6C, 0x23: 0x0D6D, 0x24: 0x0D6E, 0x25: 0x0D6F,
	0x26: 0x0D70, 0x27: 0x0D71, 0x28: 0x007B, 0x29: 0x007D, 0x2A: 0x0D72, 0x2B: 0x0D73,
	0x2C: 0x0D74, 0x2D: 0x0D75, 0x2E: 0x0D7A, 0x2F: 0x005C, 0x30: 0x0D7B, 0x31: 0x0D7C,
	0x32: 0x0D7D, 0x33: 0x0D7E, 0x34: 0x0D7F, 0x3C: 0x005B, 0x3D: 0x007E, 0x3E: 0x005D,
	0x40: 0x007C, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043, 0x44: 0x0044, 0x45: 0x0045,
	0x46: 0x0046, 0x47: 0x0047, 0x48: 0x0048, 0x49: 0x0049, 0x4A: 0x004A, 0x4B: 0x004B,
	0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F, 0x50: 0x0050, 0x51: 0x0051,
	0x52: 0x0052, 0x53: 0x0053, 0x54: 0x0054, 0x55: 0x0055, 0x56: 0x0056, 0x57: 0x0057,
	0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x65: 0x20AC,
}

var oriyaSingleShift = [128]uint16{
	0x00: 0x0040, 0x01: 0x00A3, 0x02: 0x0024, 0x03: 0x00A5, 0x04: 0x00BF, 0x05: 0x0022,
	0x06: 0x00A4, 0x07: 0x0025, 0x08: 0x0026, 0x09: 0x0027, 0x0A: 0x000C, 0x0B: 0x002A,
	0x0C: 0x002B, 0x0E: 0x002D, 0x0F: 0x002F, 0x10: 0x003C, 0x11: 0x003D, 0x12: 0x003E,
	0x13: 0x00A1, 0x14: 0x005E, 0x15: 0x00A1, 0x16: 0x005F, 0x17: 0x0023, 0x18: 0x002A,
	0x19: 0x0964, 0x1A: 0x0965, 0x1C: 0x0B66, 0x1D: 0x0B67, 0x1E: 0x0B68, 0x1F: 0x0B69,
	0x20: 0x0B6A, 0x21: 0x0B6B, 0x22: 0x0B6C, 0x23: 0x0B6D, 0x24: 0x0B6E, 0x25: 0x0B6F,
	0x26: 0x0B5C, 0x27: 0x0B5D, 0x28: 0x007B, 0x29: 0x007D, 0x2A: 0x0B5F, 0x2B: 0x0B70,
	0x2C: 0x0B71, 0x2F: 0x005C, 0x3C: 0x005B, 0x3D: 0x007E, 0x3E: 0x005D, 0x40: 0x007C,
	0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043, 0x44: 0x0044, 0x45: 0x0045, 0x46: 0x0046,
	0x47: 0x0047, 0x48: 0x0048, 0x49: 0x0049, 0x4A: 0x004A, 0x4B: 0x004B, 0x4C: 0x004C,
	0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F, 0x50: 0x0050, 0x51: 0x0051, 0x52: 0x0052,
	0x53: 0x0053, 0x54: 0x0054, 0x55: 0x0055, 0x56: 0x0056, 0x57: 0x0057, 0x58: 0x0058,
	0x59: 0x0059, 0x5A: 0x005A, 0x65: 0x20AC,
}

var punjabiSingleShift = [128]uint16{
	0x00: 0x0040, 0x01: 0x00A3, 0x02: 0x0024, 0x03: 0x00A5, 0x04: 0x00BF, 0x05: 0x0022,
	0x06: 0x00A4, 0x07: 0x0025, 0x08: 0x0026, 0x09: 0x0027, 0x0A: 0x000C, 0x0B: 0x002A,
	0x0C: 0x002B, 0x0E: 0x002D, 0x0F: 0x002F, 0x10: 0x003C, 0x11: 0x003D, 0x12: 0x003E,
	0x13: 0x00A1, 0x14: 0x005E, 0x15: 0x00A1, 0x16: 0x005F, 0x17: 0x0023, 0x18: 0x002A,
	0x19: 0x0964, 0x1A: 0x0965, 0x1C: 0x0A66, 0x1D: 0x0A67, 0x1E: 0x0A68, 0x1F: 0x0A69,
	0x20: 0x0A6A, 0x21: 0x0A6B, 0x22: 0x0A6C, 0x23: 0x0A6D, 0x24: 0x0A6E, 0x25: 0x0A6F,
	0x26: 0x0A59, 0x27: 0x0A5A, 0x28: 0x007B, 0x29: 0x007D, 0x2A: 0x0A5B, 0x2B: 0x0A5C,
	0x2C: 0x0A5E, 0x2D: 0x0A75, 0x2F: 0x005C, 0x3C: 0x005B, 0x3D: 0x007E, 0x3E: 0x005D,
	0x40: 0x007C, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043, 0x44: 0x0044, 0x45: 0x0045,
	0x46: 0x0046, 0x47: 0x0047, 0x48: 0x0048, 0x49: 0x0049, 0x4A: 0x004A, 0x4B: 0x004B,
	0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F, 0x50: 0x0050, 0x51: 0x0051,
	0x52: 0x0052, 0x53: 0x0053, 0x54: 0x0054, 0x55: 0x0055, 0x56: 0x0056, 0x57: 0x0057,
	0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x65: 0x20AC,
}

var tamilSingleShift = [128]uint16{
	0x00: 0x0040, 0x01: 0x00A3, 0x02: 0x0024, 0x03: 0x00A5, 0x04: 0x00BF, 0x05: 0x0022,
	0x06: 0x00A4, 0x07: 0x0025, 0x08: 0x0026, 0x09: 0x0027, 0x0A: 0x000C, 0x0B: 0x002A,
	0x0C: 0x002B, 0x0E: 0x002D, 0x0F: 0x002F, 0x10: 0x003C, 0x11: 0x003D, 0x12: 0x003E,
	0x13: 0x00A1, 0x14: 0x005E, 0x15: 0x00A1, 0x16: 0x005F, 0x17: 0x0023, 0x18: 0x002A,
	0x19: 0x0964, 0x1A: 0x0965, 0x1C: 0x0BE6, 0x1D: 0x0BE7, 0x1E: 0x0BE8, 0x1F: 0x0BE9,
	0x20: 0x0BEA, 0x21: 0x0BEB, 0x22: 0x0BEC, 0x23: 0x0BED, 0x24: 0x0BEE, 0x25: 0x0BEF,
	0x26: 0x0BF3, 0x27: 0x0BF4, 0x28: 0x007B, 0x29: 0x007D, 0x2A: 0x0BF5, 0x2B: 0x0BF6,
	0x2C: 0x0BF7, 0x2D: 0x0BF8, 0x2E: 0x0BFA, 0x2F: 0x005C, 0x3C: 0x005B, 0x3D: 0x007E,
	0x3E: 0x005D, 0x40: 0x007C, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043, 0x44: 0x0044,
	0x45: 0x0045, 0x46: 0x0046, 0x47: 0x0047, 0x48: 0x0048, 0x49: 0x0049, 0x4A: 0x004A,
	0x4B: 0x004B, 0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F, 0x50: 0x0050,
	0x51: 0x0051, 0x52: 0x0052, 0x53: 0x0053, 0x54: 0x0054, 0x55: 0x0055, 0x56: 0x0056,
	0x57: 0x0057, 0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x65: 0x20AC,
}

var teluguSingleShift = [128]uint16{
	0x00: 0x0040, 0x01: 0x00A3, 0x02: 0x0024, 0x03: 0x00A5, 0x04: 0x00BF, 0x05: 0x0022,
	0x06: 0x00A4, 0x07: 0x0025, 0x08: 0x0026, 0x09: 0x0027, 0x0A: 0x000C, 0x0B: 0x002A,
	0x0C: 0x002B, 0x0E: 0x002D, 0x0F: 0x002F, 0x10: 0x003C, 0x11: 0x003D, 0x12: 0x003E,
	0x13: 0x00A1, 0x14: 0x005E, 0x15: 0x00A1, 0x16: 0x005F, 0x17: 0x0023, 0x18: 0x002A,
	0x1C: 0x0C66, 0x1D: 0x0C67, 0x1E: 0x0C68, 0x1F: 0x0C69, 0x20: 0x0C6A, 0x21: 0x0C6B,
	0x22: 0x0C6C, 0x23: 0x0C6D, 0x24: 0x0C6E, 0x25: 0x0C6F, 0x26: 0x0C58, 0x27: 0x0C59,
	0x28: 0x007B, 0x29: 0x007D, 0x2A: 0x0C78, 0x2B: 0x0C79, 0x2C: 0x0C7A, 0x2D: 0x0C7B,
	0x2E: 0x0C7C, 0x2F: 0x005C, 0x30: 0x0C7D, 0x31: 0x0C7E, 0x32: 0x0C7F, 0x3C: 0x005B,
	0x3D: 0x007E, 0x3E: 0x005D, 0x40: 0x007C, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043,
	0x44: 0x0044, 0x45: 0x0045, 0x46: 0x0046, 0x47: 0x0047, 0x48: 0x0048, 0x49: 0x0049,
	0x4A: 0x004A, 0x4B: 0x004B, 0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F,
	0x50: 0x0050, 0x51: 0x0051, 0x52: 0x0052, 0x53: 0x0053, 0x54: 0x0054, 0x55: 0x0055,
	0x56: 0x0056, 0x57: 0x0057, 0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x65: 0x20AC,
}

var urduSingleShift = [128]uint16{
	0x00: 0x0040, 0x01: 0x00A3, 0x02: 0x0024, 0x03: 0x00A5, 0x04: 0x00BF, 0x05: 0x0022,
	0x06: 0x00A4, 0x07: 0x0025, 0x08: 0x0026, 0x09: 0x0027, 0x0A: 0x000C, 0x0B: 0x002A,
	0x0C: 0x002B, 0x0E: 0x002D, 0x0F: 0x002F, 0x10: 0x003C, 0x11: 0x003D, 0x12: 0x003E,
	0x13: 0x00A1, 0x14: 0x005E, 0x15: 0x00A1, 0x16: 0x005F, 0x17: 0x0023, 0x18: 0x002A,
	0x19: 0x0600, 0x1A: 0x0601, 0x1C: 0x06F0, 0x1D: 0x06F1, 0x1E: 0x06F2, 0x1F: 0x06F3,
	0x20: 0x06F4, 0x21: 0x06F5, 0x22: 0x06F6, 0x23: 0x06F7, 0x24: 0x06F8, 0x25: 0x06F9,
	0x26: 0x060C, 0x27: 0x060D, 0x28: 0x007B, 0x29: 0x007D, 0x2A: 0x060E, 0x2B: 0x060F,
	0x2C: 0x0610, 0x2D: 0x0611, 0x2E: 0x0612, 0x2F: 0x005C, 0x30: 0x0613, 0x31: 0x0614,
	0x32: 0x061B, 0x33: 0x061F, 0x34: 0x0640, 0x35: 0x0652, 0x36: 0x0658, 0x37: 0x066B,
	0x38: 0x066C, 0x39: 0x0672, 0x3A: 0x0673, 0x3B: 0x06CD, 0x3C: 0x005B, 0x3D: 0x007E,
	0x3E: 0x005D, 0x3F: 0x06D4, 0x40: 0x007C, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043,
	0x44: 0x0044, 0x45: 0x0045, 0x46: 0x0046, 0x47: 0x0047, 0x48: 0x0048, 0x49: 0x0049,
	0x4A: 0x004A, 0x4B: 0x004B, 0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F,
	0x50: 0x0050, 0x51: 0x0051, 0x52: 0x0052, 0x53: 0x0053, 0x54: 0x0054, 0x55: 0x0055,
	0x56: 0x0056, 0x57: 0x0057, 0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x65: 0x20AC,
}
