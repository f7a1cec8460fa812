package sentiment

// Polarity word lists used by the embedded default model. An external
// lexicon file (one "word<TAB>p|n" entry per line) can replace them
// via TALKLOG_SENTIMENT_LEXICON.

var positiveWords = []string{
	"嬉しい", "うれしい", "楽しい", "たのしい", "楽しみ", "好き", "大好き", "だいすき",
	"最高", "素敵", "すてき", "素晴らしい", "すばらしい", "良い", "いいね", "よかった",
	"ありがとう", "ありがと", "感謝", "幸せ", "しあわせ", "笑", "www", "かわいい",
	"可愛い", "面白い", "おもしろい", "頑張ろう", "頑張る", "おめでとう", "安心",
	"すごい", "やった", "わーい", "happy", "love", "great", "thanks", "nice",
}

var negativeWords = []string{
	"悲しい", "かなしい", "辛い", "つらい", "嫌い", "きらい", "嫌", "いや", "最悪",
	"疲れた", "つかれた", "怒", "むかつく", "ムカつく", "イライラ", "泣", "寂しい",
	"さみしい", "しんどい", "痛い", "不安", "心配", "残念", "ごめん", "すみません",
	"無理", "だめ", "ダメ", "こわい", "怖い", "sad", "angry", "hate", "tired", "sorry",
}

// exclamationBoost is added to the winning polarity per trailing "!".
const exclamationBoost = 1
