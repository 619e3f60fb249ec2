package nsecalendar

import "time"

// Gazetted NSE trading holidays, one literal table per year. The tables are
// reproduced verbatim from the exchange calendar publications; holidays are
// gazetted, not computable, so extending coverage means appending a new
// table for the year rather than deriving dates.
//
// Sources:
// - https://www.chittorgarh.com/report/india-stock-market-holidays-list-bse-nse/91/
// - https://www.angelone.in/nse-holidays-2024
// - https://zerodha.com/marketintel/holiday-calendar/

func nseDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var holidays2018 = []time.Time{
	nseDate(2018, time.January, 26),   // Republic Day
	nseDate(2018, time.March, 2),      // Maha Shivaratri
	nseDate(2018, time.March, 30),     // Good Friday
	nseDate(2018, time.April, 2),      // Ram Navami
	nseDate(2018, time.May, 1),        // Maharashtra Day
	nseDate(2018, time.August, 15),    // Independence Day
	nseDate(2018, time.August, 22),    // Bakri Id
	nseDate(2018, time.September, 13), // Ganesh Chaturthi
	nseDate(2018, time.October, 2),    // Gandhi Jayanti
	nseDate(2018, time.October, 18),   // Dussehra
	nseDate(2018, time.November, 7),   // Diwali
	nseDate(2018, time.November, 8),   // Diwali Balipratipada
	nseDate(2018, time.November, 23),  // Guru Nanak Jayanti
	nseDate(2018, time.December, 25),  // Christmas
}

var holidays2019 = []time.Time{
	nseDate(2019, time.January, 26),   // Republic Day (Saturday)
	nseDate(2019, time.March, 4),      // Maha Shivaratri
	nseDate(2019, time.March, 21),     // Holi
	nseDate(2019, time.April, 17),     // Ram Navami
	nseDate(2019, time.April, 19),     // Good Friday
	nseDate(2019, time.May, 1),        // Maharashtra Day
	nseDate(2019, time.June, 5),       // Id-ul-Fitr (Ramzan Id)
	nseDate(2019, time.August, 12),    // Bakri Id
	nseDate(2019, time.August, 15),    // Independence Day
	nseDate(2019, time.September, 2),  // Ganesh Chaturthi
	nseDate(2019, time.September, 10), // Moharram
	nseDate(2019, time.October, 2),    // Gandhi Jayanti
	nseDate(2019, time.October, 8),    // Dussehra
	nseDate(2019, time.October, 28),   // Diwali Laxmi Pujan
	nseDate(2019, time.November, 12),  // Guru Nanak Jayanti
	nseDate(2019, time.December, 25),  // Christmas
}

var holidays2020 = []time.Time{
	nseDate(2020, time.January, 26),  // Republic Day (Sunday)
	nseDate(2020, time.February, 21), // Maha Shivaratri
	nseDate(2020, time.March, 10),    // Holi
	nseDate(2020, time.April, 2),     // Ram Navami
	nseDate(2020, time.April, 6),     // Mahavir Jayanti
	nseDate(2020, time.April, 10),    // Good Friday
	nseDate(2020, time.May, 1),       // Maharashtra Day
	nseDate(2020, time.May, 25),      // Id-ul-Fitr (Ramzan Id)
	nseDate(2020, time.August, 1),    // Bakri Id
	nseDate(2020, time.August, 15),   // Independence Day (Saturday)
	nseDate(2020, time.October, 2),   // Gandhi Jayanti
	nseDate(2020, time.October, 25),  // Dussehra (Sunday)
	nseDate(2020, time.November, 14), // Diwali Balipratipada (Saturday)
	nseDate(2020, time.November, 16), // Diwali Laxmi Pujan
	nseDate(2020, time.November, 30), // Guru Nanak Jayanti
	nseDate(2020, time.December, 25), // Christmas
}

var holidays2021 = []time.Time{
	nseDate(2021, time.January, 26),   // Republic Day
	nseDate(2021, time.March, 11),     // Maha Shivaratri
	nseDate(2021, time.March, 29),     // Holi
	nseDate(2021, time.April, 2),      // Good Friday
	nseDate(2021, time.April, 21),     // Ram Navami
	nseDate(2021, time.May, 13),       // Id-ul-Fitr (Ramzan Id)
	nseDate(2021, time.July, 21),      // Bakri Id
	nseDate(2021, time.August, 19),    // Moharram
	nseDate(2021, time.September, 10), // Ganesh Chaturthi
	nseDate(2021, time.October, 15),   // Dussehra
	nseDate(2021, time.November, 4),   // Diwali Laxmi Pujan
	nseDate(2021, time.November, 5),   // Diwali Balipratipada
	nseDate(2021, time.November, 19),  // Guru Nanak Jayanti
}

var holidays2022 = []time.Time{
	nseDate(2022, time.January, 26),  // Republic Day
	nseDate(2022, time.March, 1),     // Maha Shivaratri
	nseDate(2022, time.March, 18),    // Holi
	nseDate(2022, time.April, 14),    // Dr. Baba Saheb Ambedkar Jayanti
	nseDate(2022, time.April, 15),    // Good Friday
	nseDate(2022, time.May, 3),       // Id-ul-Fitr (Ramzan Id)
	nseDate(2022, time.July, 10),     // Bakri Id
	nseDate(2022, time.August, 9),    // Moharram
	nseDate(2022, time.August, 15),   // Independence Day
	nseDate(2022, time.August, 31),   // Ganesh Chaturthi
	nseDate(2022, time.October, 5),   // Dussehra
	nseDate(2022, time.October, 24),  // Diwali Laxmi Pujan
	nseDate(2022, time.October, 26),  // Diwali Balipratipada
	nseDate(2022, time.November, 8),  // Guru Nanak Jayanti
}

var holidays2023 = []time.Time{
	nseDate(2023, time.January, 26),   // Republic Day
	nseDate(2023, time.March, 7),      // Holi
	nseDate(2023, time.March, 30),     // Ram Navami
	nseDate(2023, time.April, 4),      // Mahavir Jayanti
	nseDate(2023, time.April, 7),      // Good Friday
	nseDate(2023, time.April, 14),     // Dr. Baba Saheb Ambedkar Jayanti
	nseDate(2023, time.April, 22),     // Id-ul-Fitr (Ramzan Id)
	nseDate(2023, time.May, 1),        // Maharashtra Day
	nseDate(2023, time.June, 29),      // Bakri Id
	nseDate(2023, time.August, 15),    // Independence Day
	nseDate(2023, time.September, 19), // Ganesh Chaturthi
	nseDate(2023, time.October, 2),    // Gandhi Jayanti
	nseDate(2023, time.October, 24),   // Dussehra
	nseDate(2023, time.November, 12),  // Diwali Balipratipada
	nseDate(2023, time.November, 13),  // Diwali Laxmi Pujan
	nseDate(2023, time.November, 27),  // Guru Nanak Jayanti
	nseDate(2023, time.December, 25),  // Christmas
}

var holidays2024 = []time.Time{
	nseDate(2024, time.January, 26),  // Republic Day
	nseDate(2024, time.March, 8),     // Maha Shivaratri
	nseDate(2024, time.March, 25),    // Holi
	nseDate(2024, time.March, 29),    // Good Friday
	nseDate(2024, time.April, 11),    // Id-ul-Fitr (Ramzan Id)
	nseDate(2024, time.April, 17),    // Ram Navami
	nseDate(2024, time.May, 1),       // Maharashtra Day
	nseDate(2024, time.June, 17),     // Bakri Id
	nseDate(2024, time.July, 17),     // Moharram
	nseDate(2024, time.August, 15),   // Independence Day
	nseDate(2024, time.October, 2),   // Gandhi Jayanti
	nseDate(2024, time.November, 1),  // Diwali Laxmi Pujan
	nseDate(2024, time.November, 15), // Guru Nanak Jayanti
	nseDate(2024, time.December, 25), // Christmas
}

var holidayTables = [][]time.Time{
	holidays2018,
	holidays2019,
	holidays2020,
	holidays2021,
	holidays2022,
	holidays2023,
	holidays2024,
}
