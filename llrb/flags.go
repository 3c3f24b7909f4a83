package llrb

// flags is the per-node byte carrying exactly two independent bits: color
// and liveness. Bit 0 is DEAD, bit 1 is RED, matching the glyph map a
// printer collaborator renders nodes with.
type flags uint8

const (
	flagDead flags = 1 << 0
	flagRed  flags = 1 << 1

	// newNodeFlags is RED and ALIVE: newly constructed nodes always start
	// here.
	newNodeFlags flags = flagRed
)

func (f flags) isRed() bool   { return f&flagRed != 0 }
func (f flags) isBlack() bool { return f&flagRed == 0 }
func (f flags) isDead() bool  { return f&flagDead != 0 }
func (f flags) isAlive() bool { return f&flagDead == 0 }

func (f flags) setRed() flags   { return f | flagRed }
func (f flags) setBlack() flags { return f &^ flagRed }
func (f flags) setDead() flags  { return f | flagDead }
func (f flags) setAlive() flags { return f &^ flagDead }

// glyph is the single-character black-white rendering of a node's flags,
// used by external printer/checker collaborators (see view.go).
func (f flags) glyph() byte {
	switch f {
	case 0x00:
		return 'B'
	case 0x01:
		return 'b'
	case 0x02:
		return 'R'
	case 0x03:
		return 'r'
	default:
		return 'U'
	}
}
