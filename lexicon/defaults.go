package lexicon

var (
	defaultPositive = []string{
		"ありがとうございます", "感謝", "嬉しい", "楽しい", "満足", "やりがい", "成長", "学び",
		"貢献", "改善", "積極的", "面白い", "なるほど", "よくわかりました", "承知しました",
	}
	defaultNegative = []string{
		"しかし", "でも", "不満", "問題", "難しい", "厳しい", "懸念", "不安", "大変", "辛い",
		"辞めたい", "退職", "異動", "無理", "ちょっと", "わからない", "検討します",
	}
	// hesitation markers
	defaultFiller = []string{
		"えーっと", "あのー", "えー", "あー", "まあ", "そのー", "えっと", "あの", "なんか", "こう",
		"なんていうか", "えっとですね", "そうですね", "うーん", "はい", "えーと", "まー", "なんかー",
		"こうー", "なんというか", "えーとですね",
	}
	defaultJobSearch = []string{
		"転職", "キャリア", "エージェント", "面接", "他社", "市場価値", "次のステップ", "将来", "環境を変えたい",
	}
)

// Default returns the built-in Japanese registry.
func Default() *Registry {
	r, err := NewRegistry(defaultPositive, defaultNegative, defaultFiller, defaultJobSearch)
	if err != nil {
		panic(err)
	}
	return r
}
