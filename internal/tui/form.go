package tui

// Tab is a covert-tool page.
type Tab int

const (
	TabEncrypt Tab = iota
	TabDecrypt
)

// String returns the tab title.
func (t Tab) String() string {
	if t == TabDecrypt {
		return "Decrypt"
	}
	return "Encrypt"
}

type field struct {
	label  string
	value  string
	secret bool
}

// Form holds the covert tool's input fields.
type Form struct {
	Encrypt []*field
	Decrypt []*field
}

// Field indexes.
const (
	encMessage = iota
	encPassword
	encImage
)

const (
	decPassword = iota
	decImage
)

// NewForm returns empty encrypt and decrypt forms.
func NewForm() *Form {
	return &Form{
		Encrypt: []*field{
			{label: "Message"},
			{label: "Password", secret: true},
			{label: "Cover image"},
		},
		Decrypt: []*field{
			{label: "Password", secret: true},
			{label: "Stego image"},
		},
	}
}

// fields returns the fields of tab t.
func (f *Form) fields(t Tab) []*field {
	if t == TabDecrypt {
		return f.Decrypt
	}
	return f.Encrypt
}

// Reset empties every field.
func (f *Form) Reset() {
	for _, fl := range f.Encrypt {
		fl.value = ""
	}
	for _, fl := range f.Decrypt {
		fl.value = ""
	}
}
