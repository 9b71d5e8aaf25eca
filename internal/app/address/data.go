package address

type zone struct {
	number  string
	name    string
	streets []street
}

type street struct {
	number    string
	name      string
	buildings []string
}

var qatarZones = []zone{
	{
		number: "69",
		name:   "Doha Corniche",
		streets: []street{
			{number: "101", name: "Corniche St", buildings: []string{"12", "45", "78"}},
			{number: "102", name: "Museum St", buildings: []string{"5", "25"}},
		},
	},
	{
		number: "70",
		name:   "Al Sadd",
		streets: []street{
			{number: "201", name: "Al Sadd St", buildings: []string{"15", "36"}},
			{number: "202", name: "Sports Roundabout St", buildings: []string{"7", "88"}},
		},
	},
	{
		number: "71",
		name:   "The Pearl",
		streets: []street{
			{number: "301", name: "Porto Arabia Dr", buildings: []string{"10", "55"}},
			{number: "302", name: "Qanat Quartier St", buildings: []string{"8", "19"}},
		},
	},
}
