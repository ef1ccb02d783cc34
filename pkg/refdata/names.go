package refdata

// FirstNames is the given-name pool. Repeated entries are intentional and
// weight the draw.
var FirstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
	"Kenneth", "Carol", "Kevin", "Amanda", "Brian", "Dorothy", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy", "Nicholas",
	"Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda", "Larry",
	"Pamela", "Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen", "Benjamin",
	"Samantha", "Samuel", "Katherine", "Raymond", "Christine", "Gregory", "Debra",
	"Frank", "Rachel", "Alexander", "Carolyn", "Patrick", "Janet", "Jack", "Catherine",
	"Dennis", "Maria", "Jerry", "Heather", "Tyler", "Diane", "Aaron", "Ruth", "Jose",
	"Julie", "Adam", "Olivia", "Nathan", "Joyce", "Henry", "Virginia", "Peter",
	"Victoria", "Zachary", "Kelly", "Douglas", "Lauren", "Harold", "Christina", "Carl",
	"Joan", "Arthur", "Evelyn", "Gerald", "Judith", "Roger", "Megan", "Keith", "Andrea",
	"Jeremy", "Cheryl", "Terry", "Hannah", "Lawrence", "Jacqueline", "Sean", "Martha",
	"Christian", "Gloria", "Austin", "Teresa", "Jesse", "Ann", "Ethan", "Sara", "Dylan",
	"Madison", "Bryan", "Frances", "Albert", "Kathryn", "Joe", "Janice", "Jordan", "Jean",
	"Billy", "Abigail", "Bruce", "Alice", "Gabriel", "Judy", "Logan", "Sophia", "Willie",
	"Grace", "Alan", "Denise", "Juan", "Amber", "Wayne", "Doris", "Elijah", "Marilyn",
	"Randy", "Danielle", "Roy", "Beverly", "Vincent", "Isabella", "Ralph", "Theresa",
	"Eugene", "Diana", "Russell", "Natalie", "Bobby", "Brittany", "Mason", "Charlotte",
	"Philip", "Marie", "Louis", "Kayla", "Harry", "Alexis", "Amir", "Priya", "Omar",
	"Fatima", "Wei", "Yuki", "Raj", "Mei", "Hassan", "Aisha", "Kenji", "Sakura", "Arjun",
	"Lakshmi", "Chen", "Ming", "Jin", "Suki", "Ravi", "Nadia", "Carlos", "Sofia", "Diego",
	"Isabella", "Pablo", "Elena", "Marco", "Giulia", "Andre", "Chloe", "Pierre", "Amélie",
	"Klaus", "Hannah", "Hans", "Ingrid", "Lars", "Astrid", "Sven", "Freya", "Olaf",
	"Sigrid", "Bjorn", "Katarina", "Mikhail", "Anya", "Ivan", "Natasha", "Viktor",
	"Svetlana", "Andrei", "Olga", "Tomas", "Marta",
}

// LastNames is the surname pool.
var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter",
	"Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker", "Cruz",
	"Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales", "Murphy", "Cook",
	"Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson", "Bailey", "Reed",
	"Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward", "Richardson", "Watson", "Brooks",
	"Chavez", "Wood", "James", "Bennett", "Gray", "Mendoza", "Ruiz", "Hughes", "Price",
	"Alvarez", "Castillo", "Sanders", "Patel", "Myers", "Long", "Ross", "Foster",
	"Jimenez", "Singh", "Chen", "Kumar", "Wang", "Zhang", "Nakamura", "Tanaka",
	"Watanabe", "Yamamoto", "Suzuki", "Muller", "Schmidt", "Fischer", "Weber", "Meyer",
	"Wagner", "Schulz", "Becker", "Hoffman", "Richter", "Johansson", "Lindberg",
	"Eriksson", "Andersson", "Petrov", "Ivanov", "Volkov", "Novak", "Kowalski", "Dubois",
	"Moreau", "Laurent", "Bernard", "Fontaine", "Ferrari", "Rossi", "Romano", "Colombo",
	"Ricci", "Costa", "Santos", "Oliveira", "Ferreira", "Souza", "Almeida", "Barros",
	"Carvalho", "Nascimento", "Lima", "Ribeiro",
}
