package linker

// dedupeConstants merges every function's local constant pool into one
// pool, de-duplicating entries by byte equality (spec.md §4.D step 4). It
// returns, per merged function index (the same flat order Link assigns),
// a map from that function's local constant index to the merged pool's
// index, plus the merged pool itself.
func dedupeConstants(modules []CompiledModule) ([]map[int]int, []Constant) {
	var pool []Constant
	seen := map[string]int{} // byte content -> merged index
	var perFunction []map[int]int

	for _, mod := range modules {
		for _, fn := range mod.Functions {
			local := map[int]int{}
			for localIdx, c := range fn.Constants {
				key := string(c.Bytes)
				merged, ok := seen[key]
				if !ok {
					merged = len(pool)
					pool = append(pool, c)
					seen[key] = merged
				}
				local[localIdx] = merged
			}
			perFunction = append(perFunction, local)
		}
	}
	return perFunction, pool
}
