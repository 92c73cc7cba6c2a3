package resources

// deletedHold is how many ticks each key frame of the deleted animation is
// shown for.
const deletedHold = 10

var deletedKeyFrames = [][]string{
	{
		"    [x]    ",
		"           ",
		"   _____   ",
		"  |_____|  ",
		"   |||||   ",
		"   '---'   ",
	},
	{
		"           ",
		"    [x]    ",
		"   _____   ",
		"  |_____|  ",
		"   |||||   ",
		"   '---'   ",
	},
	{
		"     ___   ",
		"    /  /   ",
		"   / [x]   ",
		"  |     |  ",
		"   |||||   ",
		"   '---'   ",
	},
	{
		"     ___   ",
		"    /  /   ",
		"   /       ",
		"  | [x] |  ",
		"   |||||   ",
		"   '---'   ",
	},
	{
		"           ",
		"           ",
		"   _____   ",
		"  |_____|  ",
		"   |||||   ",
		"   '---'   ",
	},
	{
		"    * .    ",
		"  .   *    ",
		"   _____   ",
		"  |_____|  ",
		"   |||||   ",
		"   '---'   ",
	},
}

// deletedSequence expands the key frames into a tick-by-tick sequence.
func deletedSequence() *Sequence {
	frames := make([]Frame, 0, len(deletedKeyFrames)*deletedHold)
	for _, rows := range deletedKeyFrames {
		for i := 0; i < deletedHold; i++ {
			frames = append(frames, Frame{Rows: rows})
		}
	}
	return NewSequence(DeletedSequence, frames...)
}
