package domain

// The nine leadership dimensions are split into two fixed groups: four
// adequacy (core-competency) dimensions and five potential (growth-oriented)
// dimensions. The rubric below is immutable reference data.

const (
	GroupAdequacy  = "Adekvatnost"
	GroupPotential = "Potencijal"
)

var AdequacyDimensions = []string{"A", "B", "C", "D"}
var PotentialDimensions = []string{"E", "F", "G", "H", "I"}

// AllDimensions lists every dimension code in display order.
var AllDimensions = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

// DimensionDetail describes one scored dimension: its group, display name,
// and for each level 1..5 a short scale label and a behavioral description.
type DimensionDetail struct {
	Group       string
	Name        string
	Scale       map[int]string
	Description map[int]string
}

// DimensionDetails is the full scoring rubric keyed by dimension code.
var DimensionDetails = map[string]DimensionDetail{
	"A": {
		Group: GroupAdequacy,
		Name:  "Svrhovito i sustavno razmišljanje",
		Scale: map[int]string{
			1: "Disfunkcionalno, reaktivno ponašanje",
			2: "Ispod očekivanog razumijevanja",
			3: "Operativno adekvatno funkcioniranje",
			4: "Adaptivno vodstvo",
			5: "Sistemski arhitekt, mislilac",
		},
		Description: map[int]string{
			1: "Fokusiran samo na razmatranje unutar svog tima. Ne uviđa širi kontekst, reaktivan. Gubi se u detaljima. Ne postavlja prioritete. Ignorira dugoročne posljedice.",
			2: "Traži razumijevanje, ali mu povezuje druge. Povremeno vidi uzroke, ali ne sustavno. Reagira na pritiske umjesto da planira. Misli linearno.",
			3: "Funkcionalno razumije širi poslovni kontekst, ali ne vidi vezu sa svojim područjem. Planira kvartalno, rijetko godišnje. Prati procese, ali ih ne preispituje. Donosi stabilne, ali ne inovativne odluke.",
			4: "Integrirano promišljanje sustava i odnosa. Vidi međuovisnosti. Povezuje kratkoročno, srednjoročno i dugoročno. Prepoznaje uzroke problema, ne samo simptome. Donosi odluke u širem kontekstu.",
			5: "Vidi organizaciju kao živ sustav. Predviđa posljedice odluka kroz funkcije. Integrira kratkoročno i dugoročno. Uči druge kako misliti sistemski.",
		},
	},
	"B": {
		Group: GroupAdequacy,
		Name:  "Način vođenja i suradnje",
		Scale: map[int]string{
			1: "Autoritativan i zatvoren",
			2: "Korektan, ali nesiguran",
			3: "Kooperativan, ali centraliziran",
			4: "Razvijajući vođa",
			5: "Servant lider",
		},
		Description: map[int]string{
			1: "Koristi moć i strah. Ne sluša, prekida druge. Upravlja mikro. Stvara atmosferu nelagode.",
			2: "Sluša formalno, ali brani poziciju. Povremeno delegira, ali ne vjeruje timu. Izbjegava konflikte. Ovisi o odobravanju nadređenih.",
			3: "Timski rad uz ograničenu autonomiju. Očekuje inicijativu, ali je ne nagrađuje. Povremeno razvija druge. Konflikte rješava kompromisom.",
			4: "Jasno komunicira svrhu i očekivanja. Daje povjerenje i odgovornost. Potiče dijalog i konstruktivnu raspravu. Aktivno razvija suradnju među odjelima.",
			5: "Inspirira, ne upravlja kontrolom. Služi timu, ne egu. Kultura povjerenja i uzajamnog učenja.",
		},
	},
	"C": {
		Group: GroupAdequacy,
		Name:  "Donošenje odluka i učenje",
		Scale: map[int]string{
			1: "Impulzivno ili oklijevajuće",
			2: "Reaktivan pristup",
			3: "Racionalan, ali spor",
			4: "Iterativno donositelj odluka",
			5: "Učeći lider (safe-to-fail)",
		},
		Description: map[int]string{
			1: "Odluke su ili ishitrene ili nercijepljene. Ignorira podatke. Krivi druge za greške. Ne preispituje odluke.",
			2: "Donosi odluke pod pritiskom, propušta prilike. Uči samo kad mora. Traži sigurne, poznate odluke. Slabo reflektira rezultate.",
			3: "Koristi podatke, ali bez eksperimentiranja. Analizira rizike, ne koristi ih za učenje. Revno dokumentira, ne prilagođava.",
			4: "Testira hipoteze, mjeri rezultate. Otvoreno priznaje greške. Donosi odluke uz konzultacije.",
			5: "Radi kroz male eksperimente (safe-to-fail). Koristi feedback za brzu prilagodbu. Aktivno traži različita mišljenja. Građanin učenja - širi lekcije.",
		},
	},
	"D": {
		Group: GroupAdequacy,
		Name:  "Integritet i svrhovitost",
		Scale: map[int]string{
			1: "Ego i korist",
			2: "Formalno etičan",
			3: "Integritet u korelaciji",
			4: "Moralni autoritet",
			5: "Moralni autoritet",
		},
		Description: map[int]string{
			1: "Manipulira informacijama. Promovira osobni interes. Prepoznaje greške. Stvara strah od istine.",
			2: "Prati pravila, ali bez uvjerenja. Brani status quo. Izbjegava neugodne istine. Nedosljedan u ponašanju.",
			3: "Slijedi dogovoren kodeks. Poštuje procedure. Priznaje i ispravlja. Donosi konzistentne standarde. Drži riječ, ali bez šire svrhe.",
			4: "Dosljedno donosi teške odluke etično. Komunicira transparentno. Potiče otvorenost prema istini. Dosljedan u vrijednostima.",
			5: "Govori istinu i kad je neugodna. Usmjerava organizaciju prema svrsi. Utjelovljuje vrijednosti i integritet.",
		},
	},
	"E": {
		Group: GroupPotential,
		Name:  "Samorefleksija",
		Scale: map[int]string{
			1: "Bez uvida",
			2: "Selektivna refleksija",
			3: "Osnovna svjesnost",
			4: "Aktivna samorefleksija",
			5: "Metarefleksija",
		},
		Description: map[int]string{
			1: "Ne vidi vlastitu ulogu. Odbija feedback. Krivi sustav ili druge. Ne uči iz iskustva.",
			2: "Prima feedback, ali ga racionalizira. Uočava pogreške naknadno. Samokritičan, ali bez promjene. Niska emocionalna svjesnost.",
			3: "Svjestan utjecaja na druge. Povremeno traži feedback. Priznaje vlastite greške. Mijenja ponašanja u poznatim situacijama.",
			4: "Traži povratnu informaciju unaprijed. Prakticira “kako sam pridonio” problemu. Uči iz više perspektiva. Svjesno nesvjesne uzorke.",
			5: "Otvoreno dijeli osobne lekcije. Potiče druge na refleksiju. Razumije unutarnje “ja”. Pokazuje ranjivost bez gubitka autoriteta.",
		},
	},
	"F": {
		Group: GroupPotential,
		Name:  "Tolerancija paradoksa",
		Scale: map[int]string{
			1: "Crno-bijelo razmišljanje",
			2: "Napetost između krajnosti",
			3: "Balans kroz pokušaje",
			4: "Svjestan polariteta",
			5: "Integrira suprotnosti",
		},
		Description: map[int]string{
			1: "Traži jedno “točno” rješenje. Ne tolerira nejasnoće. Isključiv u rješenjima. Uporan u jednoj perspektivi.",
			2: "Osjeća frustraciju u nejasnoći. Brzo zauzima strane. Čeka da se “sve razjasni”. U stresu gubi širinu.",
			3: "Prepoznaje da su oba pola važna. Traži ravnotežu, ali intuitivno. Ne odustaje kad je dvosmisleno. Prihvaća različitost mišljenja.",
			4: "Koristi tenzije za inovaciju. Osjeća kada da djeluje ispod površine. Uspješno moderira suprotnosti. Djeluje mirno u nejasnoći.",
			5: "Dizajnira rješenja “i-i” umjesto “ili-ili”. Koristi paradokse za rast tima. Pomiruje brzinu i kvalitetu. Stvara sintezu iz konflikta.",
		},
	},
	"G": {
		Group: GroupPotential,
		Name:  "Integrativno razmišljanje",
		Scale: map[int]string{
			1: "U silosu",
			2: "Površna povezanost",
			3: "Osnovna integracija",
			4: "Transverzalni mislilac",
			5: "Holistički lider",
		},
		Description: map[int]string{
			1: "Vidi samo svoje područje. Ograničen utjecaj na druge. Odbija suradnju. Brani “naš način”.",
			2: "Povezuje kako drugi doprinose. Prebacuje odgovornost. Slabo prevodi između timova.",
			3: "Zna pozvati ključne funkcije. Uključuje druge u planiranje. Prihvaća međuovisnosti. Surađuje konstruktivno.",
			4: "Razumije utjecaj svoje uloge. Gradi mostove između biznisa i tehnologije. Premošćuje međufunkcijske barijere. Graditelj mostova.",
			5: "Povezuje domene i discipline. Stvara multidisciplinarne timove. Holistički vidi ekosustav (unutarnje i vanjske). Vidi šire od organizacije.",
		},
	},
	"H": {
		Group: GroupPotential,
		Name:  "Učenje iz povratne sprege",
		Scale: map[int]string{
			1: "Odbacuje feedback",
			2: "Površno učenje",
			3: "Primijenjeno naučeno",
			4: "Sustavno učenje",
			5: "Katalizator učenja",
		},
		Description: map[int]string{
			1: "Poriče, brani se, krivi druge. Ponavlja iste greške. Izbjegava retrospektive. Izolira tim od učenja.",
			2: "Uči samo u krizi. Pretvara feedback u formalnost. Slabo dokumentira lekcije.",
			3: "Redovito provjerava rezultate. Potiče dijeljenje u timu. Uvodi male promjene. Traži savjet kad ne zna.",
			4: "Integrira “learning loopove” u procese. Uči sustavno. Otvoreno priznaje greške. Transparentno dijeli pogreške. Mjeri učinak učenja.",
			5: "Ugrađuje učenje u strategiju. Traži negativne povratne informacije. Nagrađuje druge za otvorenost. Gradi učeću kulturu.",
		},
	},
	"I": {
		Group: GroupPotential,
		Name:  "Etika i povjerenje",
		Scale: map[int]string{
			1: "Nepouzdan i proračunat",
			2: "Oportunistički etičan",
			3: "Uglavnom etičan",
			4: "Transparentni i pošteni",
			5: "Moralni kompas organizacije",
		},
		Description: map[int]string{
			1: "Manipulira, skriva informacije. Zloupotrebljava formalnosti. Krši dogovore. Gubi povjerenje okoline.",
			2: "Poštuje etiku dok mu koristi. Selektivno dijeli informacije. Nedosljedan prema različitima. U tišini prelazi preko problema.",
			3: "Postupa korektno u većini situacija. Drži obećanja. Poštuje povjerenje. Pokazuje osnovno povjerenje.",
			4: "Transparentan i pravedan, ali s granicama. Aktivno brani vrijednosti tima. Otvoren kad griješi. Stvara povjerenje i pod pritiskom.",
			5: "Inspirira povjerenje kroz djela. Model etike i integriteta. Donosi odluke vođen vrijednostima. Stvara etičku kulturu.",
		},
	},
}
