package logo

// The GoldFire font: one glyph per letter of the word, at most 17 columns wide
// and up to 20 rows tall. Rows without strokes are omitted.
var (
	// GlyphG is the upper-case G.
	GlyphG = Glyph{
		{0, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}},
		{1, []int{1, 15}},
		{2, []int{0, 15}},
		{3, []int{0, 4, 5, 6, 7, 8, 9, 10, 11, 15}},
		{4, []int{0, 3, 12, 15}},
		{5, []int{0, 3, 13, 14}},
		{6, []int{0, 3}},
		{7, []int{0, 3}},
		{8, []int{0, 3}},
		{9, []int{0, 3}},
		{10, []int{0, 3, 11, 12, 13, 14}},
		{11, []int{0, 3, 10, 15}},
		{12, []int{0, 3, 10, 15}},
		{13, []int{0, 3, 11, 15}},
		{14, []int{0, 3, 12, 15}},
		{15, []int{0, 3, 12, 15}},
		{16, []int{0, 4, 5, 6, 7, 8, 9, 10, 11, 15}},
		{17, []int{0, 15}},
		{18, []int{1, 14}},
		{19, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
	}

	// GlyphO is the lower-case o.
	GlyphO = Glyph{
		{0, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
		{1, []int{1, 14}},
		{2, []int{0, 15}},
		{3, []int{0, 4, 5, 6, 7, 8, 9, 10, 11, 15}},
		{4, []int{0, 3, 12, 15}},
		{5, []int{0, 3, 12, 15}},
		{6, []int{0, 3, 12, 15}},
		{7, []int{0, 3, 12, 15}},
		{8, []int{0, 3, 12, 15}},
		{9, []int{0, 3, 12, 15}},
		{10, []int{0, 3, 12, 15}},
		{11, []int{0, 4, 5, 6, 7, 8, 9, 10, 11, 15}},
		{12, []int{0, 15}},
		{13, []int{1, 14}},
		{14, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
	}

	// GlyphL is the lower-case l.
	GlyphL = Glyph{
		{0, []int{1, 2, 3, 4}},
		{1, []int{0, 5}},
		{2, []int{0, 5}},
		{3, []int{0, 5}},
		{4, []int{1, 4}},
		{5, []int{1, 4}},
		{6, []int{1, 4}},
		{7, []int{1, 4}},
		{8, []int{1, 4}},
		{9, []int{1, 4}},
		{10, []int{1, 4}},
		{11, []int{1, 4}},
		{12, []int{1, 4, 10, 11}},
		{13, []int{1, 4, 9, 12}},
		{14, []int{1, 4, 9, 12}},
		{15, []int{1, 4, 9, 12}},
		{16, []int{1, 5, 6, 7, 8, 12}},
		{17, []int{1, 12}},
		{18, []int{2, 11}},
		{19, []int{3, 4, 5, 6, 7, 8, 9, 10}},
	}

	// GlyphD is the lower-case d.
	GlyphD = Glyph{
		{0, []int{11, 12, 13, 14}},
		{1, []int{10, 15}},
		{2, []int{10, 15}},
		{3, []int{10, 15}},
		{4, []int{11, 14}},
		{5, []int{11, 14}},
		{6, []int{11, 14}},
		{7, []int{11, 14}},
		{8, []int{5, 6, 7, 8, 9, 10, 14}},
		{9, []int{4, 14}},
		{10, []int{3, 14}},
		{11, []int{2, 6, 7, 8, 9, 10, 14}},
		{12, []int{1, 5, 11, 14}},
		{13, []int{0, 4, 11, 14}},
		{14, []int{0, 3, 11, 14}},
		{15, []int{0, 3, 11, 14}},
		{16, []int{0, 4, 5, 6, 7, 8, 9, 10, 14}},
		{17, []int{0, 14}},
		{18, []int{1, 13}},
		{19, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
	}

	// GlyphF is the upper-case F.
	GlyphF = Glyph{
		{0, []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
		{1, []int{2, 14}},
		{2, []int{1, 15}},
		{3, []int{1, 5, 6, 7, 8, 9, 10, 11, 15}},
		{4, []int{1, 4, 12, 15}},
		{5, []int{1, 4, 13, 14}},
		{6, []int{1, 4}},
		{7, []int{1, 4}},
		{8, []int{1, 5, 6, 7, 8, 9, 10, 11, 12}},
		{9, []int{1, 13}},
		{10, []int{1, 13}},
		{11, []int{1, 5, 6, 7, 8, 9, 10, 11, 12}},
		{12, []int{1, 4}},
		{13, []int{1, 4}},
		{14, []int{1, 4}},
		{15, []int{1, 4}},
		{16, []int{0, 5}},
		{17, []int{0, 5}},
		{18, []int{0, 5}},
		{19, []int{1, 2, 3, 4}},
	}

	// GlyphI is the lower-case i.
	GlyphI = Glyph{
		{0, []int{1, 2}},
		{1, []int{0, 3}},
		{2, []int{0, 3}},
		{3, []int{1, 2}},
		{5, []int{1, 2}},
		{6, []int{0, 3}},
		{7, []int{0, 3}},
		{8, []int{0, 3}},
		{9, []int{0, 3}},
		{10, []int{0, 3}},
		{11, []int{0, 3, 9, 10}},
		{12, []int{0, 3, 8, 11}},
		{13, []int{0, 3, 8, 11}},
		{14, []int{0, 4, 5, 6, 7, 11}},
		{15, []int{0, 11}},
		{16, []int{1, 10}},
		{17, []int{2, 3, 4, 5, 6, 7, 8, 9}},
	}

	// GlyphR is the lower-case r.
	GlyphR = Glyph{
		{0, []int{1, 2, 3, 4, 5}},
		{1, []int{0, 6}},
		{2, []int{0, 6}},
		{3, []int{1, 2, 7, 8, 9, 10, 11, 12, 13, 14}},
		{4, []int{3, 15}},
		{5, []int{3, 16}},
		{6, []int{3, 7, 8, 9, 10, 11, 12, 16}},
		{7, []int{3, 6, 13, 16}},
		{8, []int{3, 6, 14, 15}},
		{9, []int{3, 6}},
		{10, []int{3, 6}},
		{11, []int{2, 7}},
		{12, []int{2, 7}},
		{13, []int{2, 7}},
		{14, []int{3, 4, 5, 6}},
	}

	// GlyphE is the lower-case e.
	GlyphE = Glyph{
		{0, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
		{1, []int{1, 14}},
		{2, []int{0, 15}},
		{3, []int{0, 4, 5, 6, 7, 8, 9, 10, 11, 15}},
		{4, []int{0, 3, 12, 15}},
		{5, []int{0, 3, 12, 15}},
		{6, []int{0, 4, 5, 6, 7, 8, 9, 10, 11, 15}},
		{7, []int{0, 15}},
		{8, []int{0, 14}},
		{9, []int{0, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
		{10, []int{0, 3}},
		{11, []int{0, 3}},
		{12, []int{0, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
		{13, []int{0, 14}},
		{14, []int{1, 14}},
		{15, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
	}
)
