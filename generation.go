package genidx

// FirstGeneration returns the generation of a freshly appended slot.
func FirstGeneration[G DynamicGeneration]() G {
	return 1
}

// NextGeneration bumps g, wrapping MAX back to 1. Zero is never produced.
//
// An index recycled more than MAX times repeats a generation, so a handle
// retained across that many recycles can alias a newer occupant. The cycle is
// kept as is: retiring exhausted indices would change capacity limits.
func NextGeneration[G DynamicGeneration](g G) G {
	if g == ^G(0) {
		return FirstGeneration[G]()
	}
	return g + 1
}
