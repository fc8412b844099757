package phrases

// Travel phrase dictionaries served to the frontend, keyed by lowercase
// normalized language code.
var dictionaries = map[string]map[string]string{
	"en": {
		"hello":        "Hello",
		"goodbye":      "Goodbye",
		"thankYou":     "Thank you",
		"excuseMe":     "Excuse me",
		"howMuch":      "How much is this?",
		"whereIs":      "Where is...?",
		"restroom":     "Where is the restroom?",
		"help":         "Help!",
		"checkPlease":  "The check, please",
		"iDontSpeak":   "I don't speak the language",
		"trainStation": "Where is the train station?",
		"delicious":    "It's delicious",
	},
	"zh": {
		"hello":        "你好",
		"goodbye":      "再見",
		"thankYou":     "謝謝",
		"excuseMe":     "不好意思",
		"howMuch":      "這個多少錢？",
		"whereIs":      "...在哪裡？",
		"restroom":     "洗手間在哪裡？",
		"help":         "救命！",
		"checkPlease":  "請結帳",
		"iDontSpeak":   "我不會說這個語言",
		"trainStation": "火車站在哪裡？",
		"delicious":    "很好吃",
	},
	"fr": {
		"hello":        "Bonjour",
		"goodbye":      "Au revoir",
		"thankYou":     "Merci",
		"excuseMe":     "Excusez-moi",
		"howMuch":      "Combien ça coûte ?",
		"whereIs":      "Où est... ?",
		"restroom":     "Où sont les toilettes ?",
		"help":         "Au secours !",
		"checkPlease":  "L'addition, s'il vous plaît",
		"iDontSpeak":   "Je ne parle pas la langue",
		"trainStation": "Où est la gare ?",
		"delicious":    "C'est délicieux",
	},
	"ja": {
		"hello":        "こんにちは",
		"goodbye":      "さようなら",
		"thankYou":     "ありがとうございます",
		"excuseMe":     "すみません",
		"howMuch":      "これはいくらですか？",
		"whereIs":      "...はどこですか?",
		"restroom":     "トイレはどこですか？",
		"help":         "助けて！",
		"checkPlease":  "お会計お願いします",
		"iDontSpeak":   "その言語は話せません",
		"trainStation": "駅はどこですか？",
		"delicious":    "おいしいです",
	},
}
