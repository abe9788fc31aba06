package console

// Menu choices
const (
	choiceAddPoint = iota + 1
	choicePrintPolynomial
	choiceEvaluate
	choicePrintTable
	choiceExit
)

const decimalDigits = "0123456789"

// Prompt and message text
const (
	interactiveTitle = "Newton Interpolation Method (Dynamic Version)"
	batchTitle       = "Newton Interpolation Method"
	titleRule        = "--------------------------------------------"

	initialCountPrompt = "Enter the number of initial points: "
	batchCountPrompt   = "Enter the number of points: "
	pointsPrompt       = "Enter the x and y values for each point:\n"

	menuText = "\nNewton Interpolation Menu\n" +
		"1. Add a new point\n" +
		"2. Display current polynomial\n" +
		"3. Evaluate polynomial at a point\n" +
		"4. Display divided differences table\n" +
		"5. Exit\n" +
		"Enter your choice: "
)
