package rules

var builtin = []Jurisdiction{
	{Code: "CA", Name: "California", Quit: Days(72), Fired: Days(0), LaidOff: Days(0)},
	{Code: "CO", Name: "Colorado", Quit: NextPayday, Fired: Days(0), LaidOff: Days(0)},
	{Code: "CT", Name: "Connecticut", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
	{Code: "DC", Name: "Washington D.C.", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
	{Code: "HI", Name: "Hawaii", Quit: NextPayday, Fired: Days(0), LaidOff: Days(0)},
	{Code: "IL", Name: "Illinois", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
	{Code: "MA", Name: "Massachusetts", Quit: NextPayday, Fired: Days(0), LaidOff: Days(0)},
	{Code: "MI", Name: "Michigan", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
	{Code: "MN", Name: "Minnesota", Quit: NextPayday, Fired: Days(0), LaidOff: Days(0)},
	{Code: "MO", Name: "Missouri", Quit: NextPayday, Fired: Days(0), LaidOff: Days(0)},
	{Code: "MT", Name: "Montana", Quit: NextPayday, Fired: Days(0), LaidOff: Days(0)},
	{Code: "NV", Name: "Nevada", Quit: Days(7), Fired: Days(0), LaidOff: Days(0)},
	{Code: "NH", Name: "New Hampshire", Quit: NextPayday, Fired: Days(3), LaidOff: Days(3)},
	{Code: "NY", Name: "New York", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
	{Code: "NC", Name: "North Carolina", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
	{Code: "OR", Name: "Oregon", Quit: Days(5), Fired: Days(0), LaidOff: Days(0)},
	{Code: "PA", Name: "Pennsylvania", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
	{Code: "TX", Name: "Texas", Quit: NextPayday, Fired: Days(6), LaidOff: Days(6)},
	{Code: "UT", Name: "Utah", Quit: NextPayday, Fired: Days(1), LaidOff: Days(1)},
	{Code: "WA", Name: "Washington", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
	{Code: "WI", Name: "Wisconsin", Quit: NextPayday, Fired: NextPayday, LaidOff: NextPayday},
}

var defaultTable = mustTable(builtin)

// Default returns the built-in table.
func Default() *Table {
	return defaultTable
}

func mustTable(js []Jurisdiction) *Table {
	t, err := NewTable(js)
	if err != nil {
		panic(err)
	}
	return t
}
