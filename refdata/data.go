package refdata

// Titles accepted on the application form.
var Titles = []string{"Mr.", "Miss.", "Mrs.", "Rev."}

// Districts of Sri Lanka, plus the N/A sentinel for applicants whose
// permanent address falls outside a listed district/division pairing.
var Districts = []string{
	NotAvailable,
	"Ampara",
	"Anuradhapura",
	"Badulla",
	"Batticaloa",
	"Colombo",
	"Galle",
	"Gampaha",
	"Hambantota",
	"Jaffna",
	"Kalutara",
	"Kandy",
	"Kegalle",
	"Kilinochchi",
	"Kurunegala",
	"Mannar",
	"Matale",
	"Matara",
	"Monaragala",
	"Mullaitivu",
	"Nuwara Eliya",
	"Polonnaruwa",
	"Puttalam",
	"Ratnapura",
	"Trincomalee",
	"Vavuniya",
}

// Faculties of the university.
var Faculties = []string{
	"Agriculture",
	"Allied Health Sciences",
	"Arts",
	"Engineering",
	"Hindu Studies",
	"Management Studies and Commerce",
	"Medicine",
	"Science",
	"Technology",
}

// Courses offered across the faculties.
var Courses = []string{
	"Agriculture",
	"Arts",
	"Biological Science",
	"Biosystems Technology",
	"Business Administration",
	"Commerce",
	"Computer Science",
	"Dance",
	"Engineering",
	"Engineering Technology",
	"Law",
	"Medical Laboratory Sciences",
	"Medicine",
	"Music",
	"Nursing",
	"Pharmacy",
	"Physical Science",
	"Siddha Medicine",
}

// DSDivisions maps each district to its Divisional Secretariat divisions.
var DSDivisions = map[string][]string{
	"Ampara": {
		"Akkaraipattu", "Ampara", "Damana", "Kalmunai", "Lahugala",
		"Sainthamaruthu", "Sammanthurai", "Uhana",
	},
	"Anuradhapura": {
		"Galenbindunuwewa", "Horowpothana", "Kebithigollewa", "Kekirawa",
		"Medawachchiya", "Mihinthale", "Nuwaragam Palatha East",
		"Nuwaragam Palatha Central", "Thambuttegama",
	},
	"Badulla": {
		"Badulla", "Bandarawela", "Ella", "Haldummulla", "Hali-Ela",
		"Mahiyanganaya", "Passara", "Welimada",
	},
	"Batticaloa": {
		"Eravur Town", "Kattankudy", "Koralai Pattu", "Manmunai North",
		"Manmunai West", "Porativu Pattu", "Valaichchenai",
	},
	"Colombo": {
		"Colombo", "Dehiwala", "Homagama", "Kaduwela", "Kesbewa",
		"Kolonnawa", "Maharagama", "Moratuwa", "Padukka", "Ratmalana",
		"Seethawaka", "Sri Jayawardanapura Kotte", "Thimbirigasyaya",
	},
	"Galle": {
		"Akmeemana", "Ambalangoda", "Baddegama", "Balapitiya", "Elpitiya",
		"Galle Four Gravets", "Habaraduwa", "Hikkaduwa", "Karandeniya",
	},
	"Gampaha": {
		"Attanagalla", "Biyagama", "Divulapitiya", "Gampaha", "Ja-Ela",
		"Katana", "Kelaniya", "Mahara", "Minuwangoda", "Negombo", "Wattala",
	},
	"Hambantota": {
		"Ambalantota", "Angunakolapelessa", "Beliatta", "Hambantota",
		"Tangalle", "Tissamaharama", "Walasmulla", "Weeraketiya",
	},
	"Jaffna": {
		"Delft", "Island North", "Island South", "Jaffna", "Karainagar",
		"Nallur", "Thenmaradchy", "Vadamaradchi East",
		"Vadamaradchi North", "Vadamaradchi South-West",
		"Valikamam East", "Valikamam North", "Valikamam South",
		"Valikamam South-West", "Valikamam West",
	},
	"Kalutara": {
		"Agalawatta", "Bandaragama", "Beruwala", "Bulathsinhala",
		"Horana", "Kalutara", "Matugama", "Panadura", "Walallavita",
	},
	"Kandy": {
		"Akurana", "Doluwa", "Gampola", "Harispattuwa", "Kandy Four Gravets",
		"Kundasale", "Pathadumbara", "Udunuwara", "Yatinuwara",
	},
	"Kegalle": {
		"Aranayaka", "Dehiowita", "Deraniyagala", "Galigamuwa", "Kegalle",
		"Mawanella", "Rambukkana", "Warakapola", "Yatiyanthota",
	},
	"Kilinochchi": {
		"Kandavalai", "Karachchi", "Pachchilaipalli", "Poonakary",
	},
	"Kurunegala": {
		"Alawwa", "Ganewatta", "Ibbagamuwa", "Kuliyapitiya East",
		"Kuliyapitiya West", "Kurunegala", "Mawathagama", "Nikaweratiya",
		"Pannala", "Polgahawela", "Wariyapola",
	},
	"Mannar": {
		"Madhu", "Mannar", "Manthai West", "Musalai", "Nanaddan",
	},
	"Matale": {
		"Dambulla", "Galewela", "Laggala-Pallegama", "Matale", "Naula",
		"Rattota", "Ukuwela", "Yatawatta",
	},
	"Matara": {
		"Akuressa", "Devinuwara", "Dickwella", "Hakmana", "Kamburupitiya",
		"Matara Four Gravets", "Mulatiyana", "Weligama",
	},
	"Monaragala": {
		"Badalkumbura", "Bibile", "Buttala", "Kataragama", "Monaragala",
		"Siyambalanduwa", "Thanamalvila", "Wellawaya",
	},
	"Mullaitivu": {
		"Manthai East", "Maritimepattu", "Oddusuddan", "Puthukudiyiruppu",
		"Thunukkai", "Welioya",
	},
	"Nuwara Eliya": {
		"Ambagamuwa", "Hanguranketha", "Kothmale", "Nuwara Eliya",
		"Walapane",
	},
	"Polonnaruwa": {
		"Dimbulagala", "Elahera", "Hingurakgoda", "Lankapura",
		"Medirigiriya", "Thamankaduwa", "Welikanda",
	},
	"Puttalam": {
		"Anamaduwa", "Chilaw", "Dankotuwa", "Kalpitiya", "Madampe",
		"Nattandiya", "Puttalam", "Wennappuwa",
	},
	"Ratnapura": {
		"Balangoda", "Eheliyagoda", "Embilipitiya", "Godakawela",
		"Kalawana", "Kuruwita", "Pelmadulla", "Ratnapura",
	},
	"Trincomalee": {
		"Gomarankadawala", "Kantalai", "Kinniya", "Kuchchaveli", "Muttur",
		"Thambalagamuwa", "Town and Gravets", "Verugal",
	},
	"Vavuniya": {
		"Vavuniya", "Vavuniya North", "Vavuniya South", "Vengalacheddikulam",
	},
}
