package checkout

// Address is a saved delivery address the user can pick during checkout.
type Address struct {
	ID        string
	Name      string
	Detail    string
	IsDefault bool
}

// Addresses returns the saved delivery addresses.
func Addresses() []Address {
	return []Address{
		{ID: "1", Name: "Ký túc xá BKHN", Detail: "Ngõ 22 Tạ Quang Bửu, Hai Bà Trưng, Hà Nội", IsDefault: true},
		{ID: "2", Name: "Văn phòng", Detail: "Tòa nhà B1, ĐHBKHN, Số 1 Đại Cồ Việt, Hai Bà Trưng, Hà Nội", IsDefault: false},
	}
}

// AddressByID looks up a saved address. The second return value reports
// whether the id is known.
func AddressByID(id string) (Address, bool) {
	for _, a := range Addresses() {
		if a.ID == id {
			return a, true
		}
	}
	return Address{}, false
}

// DefaultAddress returns the address marked as default, falling back to the
// first one.
func DefaultAddress() Address {
	all := Addresses()
	for _, a := range all {
		if a.IsDefault {
			return a
		}
	}
	return all[0]
}
