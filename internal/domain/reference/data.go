package reference

// Locales with translated tables.
const (
	LocaleES = "es"
	LocaleEN = "en"
)

// CodeUnitedStates is the country code pinned into country leaderboards.
const CodeUnitedStates = "US"

// IndianapolisEvent is the canonical name every Indianapolis variant is folded into.
const IndianapolisEvent = "Indianapolis 500"

// eventCountry maps an event name to a country code.
var eventCountry = map[string]string{
	"British":         "GB",
	"French":          "FR",
	"Italian":         "IT",
	"German":          "DE",
	"Monaco":          "MC",
	"Belgian":         "BE",
	"Dutch":           "NL",
	"Swiss":           "CH",
	"Argentine":       "AR",
	IndianapolisEvent: CodeUnitedStates,
	"Spanish":         "ES",
	"Portuguese":      "PT",
	"Moroccan":        "MA",
}

// eventVenues lists the circuits used by each event during the decade.
var eventVenues = map[string][]string{
	"Argentine":       {"Autódromo Juan y Oscar Gálvez"},
	"Belgian":         {"Spa-Francorchamps"},
	"British":         {"Silverstone", "Aintree"},
	"Dutch":           {"Zandvoort"},
	"French":          {"Reims-Gueux", "Rouen-Les-Essarts"},
	"German":          {"Nürburgring", "AVUS"},
	IndianapolisEvent: {"Indianapolis Motor Speedway"},
	"Italian":         {"Autodromo Nazionale Monza", "Circuito di Pescara"},
	"Monaco":          {"Circuit de Monaco"},
	"Moroccan":        {"Ain-Diab Circuit"},
	"Portuguese":      {"Boavista", "Monsanto Park"},
	"Spanish":         {"Pedralbes"},
	"Swiss":           {"Bremgarten"},
}

var countryNames = map[string]map[string]string{
	LocaleES: {
		"GB": "Reino Unido", "FR": "Francia", "IT": "Italia", "DE": "Alemania",
		"MC": "Mónaco", "BE": "Bélgica", "NL": "Países Bajos", "CH": "Suiza",
		"AR": "Argentina", "US": "Estados Unidos", "ES": "España", "PT": "Portugal",
		"MA": "Marruecos",
	},
	LocaleEN: {
		"GB": "United Kingdom", "FR": "France", "IT": "Italy", "DE": "Germany",
		"MC": "Monaco", "BE": "Belgium", "NL": "Netherlands", "CH": "Switzerland",
		"AR": "Argentina", "US": "United States", "ES": "Spain", "PT": "Portugal",
		"MA": "Morocco",
	},
}

// countryCoords holds approximate marker positions, not circuit locations.
var countryCoords = map[string][2]float64{
	"GB": {51.5, -0.1}, "FR": {48.85, 2.35}, "IT": {41.9, 12.5},
	"DE": {52.52, 13.4}, "MC": {43.73, 7.42}, "BE": {50.85, 4.35},
	"NL": {52.37, 4.89}, "CH": {46.95, 7.45}, "AR": {-34.6, -58.38},
	"US": {39.8, -86.1}, "ES": {40.42, -3.7}, "PT": {38.72, -9.14},
	"MA": {33.58, -7.62},
}

var monthAbbreviations = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var monthNames = map[string][12]string{
	LocaleES: {"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio", "Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
	LocaleEN: {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
}

var timeline = []struct {
	year int
	text string
}{
	{1950, "🏁 Se da el primer campeonato oficial de F1. Farina vence a Fangio y gana el título."},
	{1951, "🔥 Fangio gana su primer campeonato con Alfa Romeo, convirtiéndose en una figura dominante. Pero, por falta de apoyo financiero del gobierno italiano, su equipo decide retirarse de la competencia ese año"},
	{1952, "🔧 Ferrari domina tras la salida de Alfa Romeo. Ascari gana 6 carreras."},
	{1953, "🏎️ Ascari repite título con Ferrari, la temporada es marcada por su consistencia."},
	{1954, "⚙️ Fangio empieza con Maserati, termina con Mercedes… ¡y gana su segundo título!"},
	{1955, "☠️ Un Mercedes-Benz 300 SLR se estrella contra la tribuna en la competencia 24 horas de Le Mans, matando a más de 80 espectadores y al piloto Pierre Levegh. Esto ocasiona que, aunque era una competencia distinta, Mercedes se retire también de la F1. Fangio vuelve a campeonar."},
	{1956, "🔄 Fangio gana su cuarto título con un Ferrari, gracias a que su compañero Collins le cedió su auto durante un pit-stop. Collins priorizó el título del argentino por sobre sus propias posibilidades de ganar la carrera."},
	{1957, "🕊️ Fallece Eugenio Castellotti durante una sesión privada de pruebas de Ferrari en el Autódromo de Módena. Fangio gana su quinto campeonato en un Maserati, lamentando la pérdida de su compañero de equipo de 1956."},
	{1958, "🧠 Se establece el campeonato de constructores, el cual se otorga a la escudería que acumule más puntos a lo largo de la temporada. Gana la escudería Vanwall y Mike Hawthorn gana el campeonato de pilotos en un Ferrari. Fangio es secuestrado por 26 horas el 23 de febrero en Cuba y ese mismo año se retira de la Fórmula 1 después del Gran Premio de Francia en Reims."},
	{1959, "🧪 Jack Brabham, piloto de Cooper, se quedó sin combustible en la última vuelta, pero logró empujar su carro hasta la meta para asegurar su primer título mundial."},
}
