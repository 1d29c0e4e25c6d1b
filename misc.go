package neongrid

import "github.com/hajimehoshi/ebiten/v2"

// Helper type used for fades and durations of timed effects.
type TicksDuration uint32

const ZeroTicks TicksDuration = 0

// Quick alias to the control key for use with [AccessorDebug.Printfk]().
const Ctrl = ebiten.KeyControl

// internal usage
const maxUint32 = 0xFFFF_FFFF

// --- errors ---
const drawStageMisuse = "can't %s during draw stage"
