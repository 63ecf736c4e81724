package trip

import "fmt"

// Question IDs, in the order they can be asked.
const (
	QuestionFirstName    = "first_name"
	QuestionBeach        = "beach"
	QuestionCurrentTemp  = "current_temp"
	QuestionMinTemp      = "min_temp"
	QuestionIceCream     = "ice_cream"
	QuestionCash         = "cash"
	QuestionIceCreamCost = "ice_cream_cost"
)

// Message texts. The formatted ones take their arguments in order.
const (
	MsgStayHome   = "Ok, enjoy your time at home."
	MsgTooCold    = "It's not warm enough, stay at home."
	MsgCanGo      = "You can go to the beach because it is %d degrees."
	MsgChange     = "You can buy an ice cream and you will have %s%.2f left."
	MsgNoIceCream = "Sorry, no ice cream today."
	MsgBringCash  = "Please remember to bring cash next time."
	MsgEnjoyBeach = "Enjoy your time at the beach."
)

// DefaultCurrencySymbol prefixes the change amount when Options leave it empty.
const DefaultCurrencySymbol = "$"

// FirstNameQuestion asks for the user's first name.
func FirstNameQuestion() Question {
	return Question{ID: QuestionFirstName, Kind: KindText, Prompt: "Please enter your first name: "}
}

// BeachQuestion greets name and asks whether they want to go to the beach.
func BeachQuestion(name string) Question {
	return Question{
		ID:     QuestionBeach,
		Kind:   KindYesNo,
		Prompt: fmt.Sprintf("Hi %s, do you want to go to the beach? (y/n): ", name),
	}
}

// CurrentTempQuestion asks for the current temperature.
func CurrentTempQuestion() Question {
	return Question{ID: QuestionCurrentTemp, Kind: KindInt, Prompt: "Please tell me the current temperature: "}
}

// MinTempQuestion asks for the lowest temperature the user accepts.
func MinTempQuestion() Question {
	return Question{ID: QuestionMinTemp, Kind: KindInt, Prompt: "What is the minimum temperature for going to the beach? "}
}

// IceCreamQuestion asks whether the user wants an ice cream.
func IceCreamQuestion() Question {
	return Question{ID: QuestionIceCream, Kind: KindYesNo, Prompt: "Do you want to buy an ice cream? (y/n): "}
}

// CashQuestion asks how much cash the user carries.
func CashQuestion() Question {
	return Question{ID: QuestionCash, Kind: KindMoney, Prompt: "How much cash do you have? "}
}

// IceCreamCostQuestion asks what an ice cream costs.
func IceCreamCostQuestion() Question {
	return Question{ID: QuestionIceCreamCost, Kind: KindMoney, Prompt: "How much is an ice cream? "}
}
