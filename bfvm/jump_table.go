package bfvm

// JumpTable maps each matched bracket to the index of its partner.
// Entries at other positions, including a ']' without an opening '[', are zero.
type JumpTable []int

func BuildJumpTable(ins Instructions) (JumpTable, error) {
	table := make(JumpTable, len(ins))
	var opens []int
	for pc, i := range ins {
		switch i {
		case OpLoopStart:
			opens = append(opens, pc)
		case OpLoopEnd:
			if len(opens) == 0 {
				// dangling ']' is tolerated here, it is only hit at run time
				continue
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			table[open] = pc
			table[pc] = open
		}
	}
	if len(opens) > 0 {
		// the leftmost unclosed '[' is the first one a forward scan gives up on
		return nil, &ParseError{
			PC: opens[0],
		}
	}
	return table, nil
}
