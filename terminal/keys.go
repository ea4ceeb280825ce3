package terminal

// Key codes are plain integers as delivered by the surface: printable
// runes map to their code point, control keys to their ASCII value.
const (
	KeyNone      = -1 // sentinel: no key pending
	KeyTab       = 9
	KeyEnter     = 10
	KeyEscape    = 27
	KeyBackspace = 127
)

// Extended key codes, delivered only when extended key decoding is
// enabled on the surface. Values follow the curses keypad convention.
const (
	KeyDown  = 258
	KeyUp    = 259
	KeyLeft  = 260
	KeyRight = 261
	KeyHome  = 262

	KeyF1  = 265
	KeyF2  = 266
	KeyF3  = 267
	KeyF4  = 268
	KeyF5  = 269
	KeyF6  = 270
	KeyF7  = 271
	KeyF8  = 272
	KeyF9  = 273
	KeyF10 = 274
	KeyF11 = 275
	KeyF12 = 276

	KeyDelete   = 330
	KeyInsert   = 331
	KeyPageDown = 338
	KeyPageUp   = 339
	KeyEnd      = 360
)
