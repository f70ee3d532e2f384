package catalog

// Region is one row of the static Maharashtra region/district table the
// catalog is generated from.
type Region struct {
	Name      string
	Districts []string
}

var maharashtraRegions = []Region{
	{Name: "Pune", Districts: []string{"Pune", "Pimpri-Chinchwad", "Baramati", "Shirur", "Daund"}},
	{Name: "Mumbai", Districts: []string{"Mumbai", "Thane", "Navi Mumbai", "Kalyan", "Vasai"}},
	{Name: "Nashik", Districts: []string{"Nashik", "Malegaon", "Igatpuri", "Sinnar", "Yeola"}},
	{Name: "Nagpur", Districts: []string{"Nagpur", "Wardha", "Kamptee", "Katol", "Umred"}},
	{Name: "Aurangabad", Districts: []string{"Aurangabad", "Jalna", "Gangapur", "Kannad", "Sillod"}},
	{Name: "Kolhapur", Districts: []string{"Kolhapur", "Ichalkaranji", "Shirol", "Gadhinglaj", "Kagal"}},
	{Name: "Sangli", Districts: []string{"Sangli", "Miraj", "Tasgaon", "Vita", "Kavathe Mahankal"}},
	{Name: "Satara", Districts: []string{"Satara", "Karad", "Wai", "Mahabaleshwar", "Phaltan"}},
	{Name: "Solapur", Districts: []string{"Solapur", "Barshi", "Akalkot", "Pandharpur", "Malshiras"}},
	{Name: "Amravati", Districts: []string{"Amravati", "Daryapur", "Anjangaon", "Morshi", "Chandurbazar"}},
	{Name: "Akola", Districts: []string{"Akola", "Akot", "Balapur", "Murtijapur", "Telhara"}},
	{Name: "Yavatmal", Districts: []string{"Yavatmal", "Wani", "Umarkhed", "Digras", "Ghatanji"}},
	{Name: "Latur", Districts: []string{"Latur", "Ahmadpur", "Udgir", "Ausa", "Renapur"}},
	{Name: "Osmanabad", Districts: []string{"Osmanabad", "Tuljapur", "Omerga", "Paranda", "Bhum"}},
	{Name: "Nanded", Districts: []string{"Nanded", "Mudkhed", "Kinwat", "Himayatnagar", "Deglur"}},
	{Name: "Beed", Districts: []string{"Beed", "Gevrai", "Ambajogai", "Kaij", "Parli"}},
	{Name: "Jalgaon", Districts: []string{"Jalgaon", "Bhusawal", "Amalner", "Erandol", "Yawal"}},
	{Name: "Dhule", Districts: []string{"Dhule", "Nandurbar", "Shahada", "Sakri", "Shirpur"}},
	{Name: "Ahmednagar", Districts: []string{"Ahmednagar", "Shrirampur", "Kopargaon", "Sangamner", "Rahata"}},
	{Name: "Parbhani", Districts: []string{"Parbhani", "Jintur", "Gangakhed", "Purna", "Pathri"}},
	{Name: "Hingoli", Districts: []string{"Hingoli", "Kalamnuri", "Sengaon", "Basmath", "Aundha"}},
	{Name: "Nandurbar", Districts: []string{"Nandurbar", "Navapur", "Taloda", "Shahada", "Akkalkuwa"}},
	{Name: "Gadchiroli", Districts: []string{"Gadchiroli", "Aheri", "Chamorshi", "Dhanora", "Sironcha"}},
	{Name: "Chandrapur", Districts: []string{"Chandrapur", "Ballarpur", "Warora", "Bhadravati", "Gondpipri"}},
	{Name: "Bhandara", Districts: []string{"Bhandara", "Tumsar", "Pauni", "Lakhandur", "Mohadi"}},
	{Name: "Gondia", Districts: []string{"Gondia", "Tiroda", "Amgaon", "Goregaon", "Arjuni"}},
	{Name: "Washim", Districts: []string{"Washim", "Mangrulpir", "Karanja", "Risod", "Malegaon"}},
	{Name: "Buldhana", Districts: []string{"Buldhana", "Chikhli", "Malkapur", "Khamgaon", "Jalgaon"}},
	{Name: "Jalna", Districts: []string{"Jalna", "Ambad", "Ghansawangi", "Jafferabad", "Mantha"}},
	{Name: "Ratnagiri", Districts: []string{"Ratnagiri", "Khed", "Dapoli", "Chiplun", "Guhagar"}},
	{Name: "Sindhudurg", Districts: []string{"Sindhudurg", "Malvan", "Vengurla", "Kudal", "Devgad"}},
	{Name: "Raigad", Districts: []string{"Raigad", "Alibaug", "Pen", "Panvel", "Mahad"}},
	{Name: "Palghar", Districts: []string{"Palghar", "Vasai", "Dahanu", "Talasari", "Jawhar"}},
}

// Regions returns the static region/district table.
func Regions() []Region {
	return maharashtraRegions
}
