package bedmethyl

// ModificationCode describes one modified_base_code_and_motif entry.
// Adapted from the SAM tag specification's base modification codes.
type ModificationCode struct {
	Code           string
	Abbreviation   string
	Name           string
	ChEBI          int // 0 when no ChEBI entry exists
	UnmodifiedBase byte
}

var modificationCodes = []ModificationCode{
	{"m", "5mC", "5-Methylcytosine", 27551, 'C'},
	{"h", "5hmC", "5-Hydroxymethylcytosine", 76792, 'C'},
	{"f", "5fC", "5-Formylcytosine", 76794, 'C'},
	{"c", "5caC", "5-Carboxylcytosine", 76793, 'C'},
	{"C", "modC", "Ambiguous cytosine modification", 0, 'C'},
	{"g", "5hmU", "5-Hydroxymethyluracil", 16964, 'T'},
	{"e", "5fU", "5-Formyluracil", 80961, 'T'},
	{"b", "5caU", "5-Carboxyluracil", 17477, 'T'},
	{"T", "modT", "Ambiguous thymine modification", 0, 'T'},
	{"a", "6mA", "6-Methyladenine", 28871, 'A'},
	{"A", "modA", "Ambiguous adenine modification", 0, 'A'},
	{"o", "8oxoG", "8-Oxoguanine", 44605, 'G'},
	{"G", "modG", "Ambiguous guanine modification", 0, 'G'},
	{"n", "Xao", "Xanthosine", 18107, 'N'},
	{"N", "modN", "Ambiguous modification", 0, 'N'},
}

// LookupCode resolves a modification code to its description.
func LookupCode(code string) (ModificationCode, bool) {
	for _, c := range modificationCodes {
		if c.Code == code {
			return c, true
		}
	}
	return ModificationCode{}, false
}

// ModificationCodes returns the full code registry.
func ModificationCodes() []ModificationCode {
	out := make([]ModificationCode, len(modificationCodes))
	copy(out, modificationCodes)
	return out
}
