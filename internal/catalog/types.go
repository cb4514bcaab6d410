package catalog

// Catalog is the whole fundraising document. It is loaded in one piece and
// never mutated afterwards.
type Catalog struct {
	Events       []Event       `json:"events"`
	Products     []Product     `json:"products"`
	AuctionItems []AuctionItem `json:"auctionItems"`
	Suggestions  []Suggestion  `json:"suggestions"`
}

// Event is a dated fundraising event.
type Event struct {
	Date          Date   `json:"date"`
	Title         string `json:"title"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	Time          Text   `json:"time,omitempty"`
	Benefit       Text   `json:"benefit,omitempty"`
	OrderDeadline *Date  `json:"orderDeadline,omitempty"`
	WebsiteURL    Text   `json:"websiteUrl,omitempty"`
	Featured      bool   `json:"featured"`
}

// Product is an item sold for the fundraiser.
type Product struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    Text    `json:"imageUrl,omitempty"`
	// Features is nil when the document omits the list; an empty list is
	// still rendered.
	Features []string `json:"features,omitempty"`
	Contact  Text     `json:"contact,omitempty"`
}

// AuctionItem is a donated item or experience up for auction.
type AuctionItem struct {
	Title       string `json:"title"`
	Donor       string `json:"donor"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Value       Text   `json:"value,omitempty"`
	Duration    Text   `json:"duration,omitempty"`
	Capacity    Text   `json:"capacity,omitempty"`
	Location    Text   `json:"location,omitempty"`
	Nights      Text   `json:"nights,omitempty"`
	Quantity    Text   `json:"quantity,omitempty"`
	Experience  Text   `json:"experience,omitempty"`
	CleaningFee Text   `json:"cleaningFee,omitempty"`
	WebsiteURL  Text   `json:"websiteUrl,omitempty"`
	Status      Text   `json:"status,omitempty"`
	Note        Text   `json:"note,omitempty"`
}

// Suggestion is a fundraising idea contributed by the community.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      Text   `json:"source,omitempty"`
	Volunteer   Text   `json:"volunteer,omitempty"`
	Note        Text   `json:"note,omitempty"`
}

// CategoryAll is the filter sentinel that matches every auction item.
const CategoryAll = "all"
