package catalog

// Consolidate merges multiple catalog entries that refer to the same
// real-world person into a single record. the first entry is the base and
// its display metadata (name, custom content) wins; counts are summed and
// document lists are unioned, de-duplicated by (filename, source URL) with
// the first occurrence kept. the merge is deterministic for a given input
// order, and input order is always catalog order.
func Consolidate(people []Person) *Person {
	if len(people) == 0 {
		return nil
	}
	if len(people) == 1 {
		return &people[0]
	}

	merged := people[0]

	totalMatches := 0
	totalFileCount := 0
	seenDocs := make(map[[2]string]bool)
	var allDocs []DocumentEvidence

	for i := range people {
		totalMatches += people[i].TotalMatches
		totalFileCount += people[i].PinpointFileCount

		for _, doc := range people[i].Documents {
			key := [2]string{doc.Filename, doc.SourceURL}
			if seenDocs[key] {
				continue
			}
			seenDocs[key] = true
			allDocs = append(allDocs, doc)
		}
	}

	merged.TotalMatches = totalMatches
	merged.PinpointFileCount = totalFileCount
	merged.Documents = allDocs
	// recomputed from the merged counts, never inherited from one input
	merged.FoundInDocuments = totalMatches > 0 || totalFileCount > 0

	return &merged
}

// FilterDuplicates drops alias variants of people already in the list,
// keeping the first entry seen per canonical identity. excludeCanonical,
// when non-empty, removes that identity entirely; person pages use it to
// keep the displayed person out of their own "other matches" list.
func FilterDuplicates(people []Person, aliases *AliasTable, excludeCanonical string) []Person {
	seen := make(map[string]bool)
	filtered := make([]Person, 0, len(people))

	for i := range people {
		canonical := aliases.Resolve(people[i].Slug)
		if excludeCanonical != "" && canonical == excludeCanonical {
			continue
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		filtered = append(filtered, people[i])
	}
	return filtered
}
