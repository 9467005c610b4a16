package itinerary

// Sequences returns every candidate ordering that picks exactly one
// destination from each region, in region order. The result is ordered
// lexicographically: region order first, then within-region list order, so
// enumeration is reproducible. Its length is the product of the region sizes;
// an empty region list yields no sequences.
func Sequences(regions [][]string) [][]string {
	if len(regions) == 0 {
		return nil
	}

	total := 1
	for _, region := range regions {
		total *= len(region)
	}

	if total == 0 {
		return nil
	}

	sequences := make([][]string, 0, total)
	current := make([]string, len(regions))

	var expand func(depth int)
	expand = func(depth int) {
		if depth == len(regions) {
			sequence := make([]string, len(current))
			copy(sequence, current)
			sequences = append(sequences, sequence)

			return
		}

		for _, destination := range regions[depth] {
			current[depth] = destination
			expand(depth + 1)
		}
	}
	expand(0)

	return sequences
}
