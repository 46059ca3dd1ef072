package datatable

// BrowserState menampung state UI data browser: tabel aktif, input
// pencarian vs term yang sudah di-commit, sort, dan halaman. Aturan
// reset antar operasi dikodekan di sini.
type BrowserState struct {
	Table       string
	SearchInput string
	SearchTerm  string
	SortField   string
	SortDir     string
	Page        int
	PerPage     int
}

func NewBrowserState() BrowserState {
	return BrowserState{
		Table:   "courses",
		SortDir: "asc",
		Page:    1,
		PerPage: 10,
	}
}

// SelectTable mengganti tabel aktif: pencarian, sort, dan halaman
// kembali ke default.
func (s *BrowserState) SelectTable(table string) {
	s.Table = table
	s.SearchInput = ""
	s.SearchTerm = ""
	s.SortField = ""
	s.SortDir = "asc"
	s.Page = 1
}

// SetSearchInput hanya mengubah teks yang sedang diketik; filter belum
// berubah sampai CommitSearch dipanggil.
func (s *BrowserState) SetSearchInput(text string) {
	s.SearchInput = text
}

// CommitSearch menerapkan teks pencarian dan kembali ke halaman 1.
func (s *BrowserState) CommitSearch() {
	s.SearchTerm = s.SearchInput
	s.Page = 1
}

// Sort: klik kolom yang sama membalik arah, kolom baru mulai dari
// ascending. Halaman kembali ke 1.
func (s *BrowserState) Sort(field string) {
	if s.SortField == field {
		if s.SortDir == "asc" {
			s.SortDir = "desc"
		} else {
			s.SortDir = "asc"
		}
	} else {
		s.SortField = field
		s.SortDir = "asc"
	}
	s.Page = 1
}

// SetPerPage mengubah ukuran halaman dan kembali ke halaman 1.
func (s *BrowserState) SetPerPage(n int) {
	if n <= 0 {
		n = 10
	}
	s.PerPage = n
	s.Page = 1
}

func (s *BrowserState) GoToPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// Query menghasilkan permintaan fetch untuk state saat ini.
func (s BrowserState) Query() Query {
	return Query{
		Search:    s.SearchTerm,
		SortField: s.SortField,
		SortDir:   s.SortDir,
		Page:      s.Page,
		Limit:     s.PerPage,
	}.Normalize()
}
