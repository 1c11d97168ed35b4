package diff

// Chunk is a maximal run of consecutive non-same lines sharing one type,
// addressed by index into the owning Result. Start and End are inclusive.
type Chunk struct {
	Start int
	End   int
	Type  LineType
	Lines int
}

// ChunksOf groups a result's changed lines into chunks. Same lines never
// belong to a chunk, and a type change (including removed directly followed
// by added) always closes the current chunk. The chunk list is rebuilt from
// scratch on every call.
func ChunksOf(result *Result) []Chunk {
	var chunks []Chunk
	open := false
	var current Chunk

	for i, line := range result.Lines {
		if line.Type == LineSame {
			if open {
				chunks = append(chunks, current)
				open = false
			}
			continue
		}

		if open && line.Type == current.Type {
			current.End = i
			current.Lines++
			continue
		}

		if open {
			chunks = append(chunks, current)
		}
		current = Chunk{Start: i, End: i, Type: line.Type, Lines: 1}
		open = true
	}

	if open {
		chunks = append(chunks, current)
	}
	return chunks
}
