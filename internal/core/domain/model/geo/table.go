package geo

// The price table ships with the application. Fees are in the store's
// currency; the first fee is home delivery, the second is pickup point.
var regions = []Region{
	{code: "01", name: "Adrar", arabicName: "أدرار", fees: mustFees(800, 450)},
	{code: "02", name: "Chlef", arabicName: "الشلف", fees: mustFees(450, 250)},
	{code: "05", name: "Batna", arabicName: "باتنة", fees: mustFees(500, 300)},
	{code: "06", name: "Béjaïa", arabicName: "بجاية", fees: mustFees(500, 300)},
	{code: "09", name: "Blida", arabicName: "البليدة", fees: mustFees(400, 200)},
	{code: "13", name: "Tlemcen", arabicName: "تلمسان", fees: mustFees(550, 300)},
	{code: "15", name: "Tizi Ouzou", arabicName: "تيزي وزو", fees: mustFees(450, 250)},
	{code: "16", name: "Algiers", arabicName: "الجزائر", fees: mustFees(300, 150)},
	{code: "19", name: "Sétif", arabicName: "سطيف", fees: mustFees(500, 300)},
	{code: "23", name: "Annaba", arabicName: "عنابة", fees: mustFees(550, 300)},
	{code: "25", name: "Constantine", arabicName: "قسنطينة", fees: mustFees(500, 300)},
	{code: "30", name: "Ouargla", arabicName: "ورقلة", fees: mustFees(700, 400)},
	{code: "31", name: "Oran", arabicName: "وهران", fees: mustFees(450, 250)},
	{code: "34", name: "Bordj Bou Arréridj", arabicName: "برج بوعريريج", fees: mustFees(500, 300)},
	{code: "35", name: "Boumerdès", arabicName: "بومرداس", fees: mustFees(400, 200)},
	{code: "47", name: "Ghardaïa", arabicName: "غرداية", fees: mustFees(650, 400)},
}

var cities = map[string][]string{
	"01": {"Adrar", "Reggane", "Timimoun"},
	"02": {"Chlef", "Ténès", "Oued Fodda"},
	"05": {"Batna", "Barika", "Arris", "Merouana"},
	"06": {"Béjaïa", "Akbou", "Amizour", "Kherrata"},
	"09": {"Blida", "Boufarik", "Mouzaïa", "El Affroun"},
	"13": {"Tlemcen", "Maghnia", "Remchi"},
	"15": {"Tizi Ouzou", "Azazga", "Draâ Ben Khedda", "Boghni"},
	"16": {"Algiers Centre", "Bab El Oued", "El Harrach", "Hussein Dey", "Dar El Beïda"},
	"19": {"Sétif", "El Eulma", "Aïn Oulmene"},
	"23": {"Annaba", "El Bouni", "El Hadjar"},
	"25": {"Constantine", "El Khroub", "Hamma Bouziane", "Didouche Mourad"},
	"30": {"Ouargla", "Hassi Messaoud", "Touggourt"},
	"31": {"Oran", "Es Sénia", "Bir El Djir", "Arzew"},
	"34": {"Bordj Bou Arréridj", "Ras El Oued", "Medjana"},
	"35": {"Boumerdès", "Boudouaou", "Bordj Menaïel", "Dellys"},
	"47": {"Ghardaïa", "Metlili", "El Guerrara"},
}
