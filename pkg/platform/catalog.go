package platform

// Identifiers of the supported platforms and SDKs.
const (
	Web         = "web"
	IOS         = "ios"
	Android     = "android"
	Flutter     = "flutter"
	React       = "react"
	Vue         = "vue"
	HTML        = "html"
	JavaScript  = "javascript"
	ReactNative = "react-native"
	Unity       = "unity"
	CSharp      = "csharp"
	Mobile      = "mobile"
	Wagmi       = "wagmi"
	Other       = "other"
	Viem        = "viem"
	Ethers5     = "ethers5"
	Ethers      = "ethers"
	Web3JS      = "web3js"
	JS          = "js"
)

// catalog is the display order of every tab. It is never modified after init.
var catalog = []Option{
	{Identifier: Web, Label: "Web"},
	{Identifier: IOS, Label: "iOS"},
	{Identifier: Android, Label: "Android"},
	{Identifier: Flutter, Label: "Flutter"},
	{Identifier: React, Label: "React"},
	{Identifier: Vue, Label: "Vue"},
	{Identifier: HTML, Label: "HTML"},
	{Identifier: JavaScript, Label: "JavaScript"},
	{Identifier: ReactNative, Label: "React Native"},
	{Identifier: Unity, Label: "Unity"},
	{Identifier: CSharp, Label: "C#"},
	{Identifier: Mobile, Label: "Mobile"},
	{Identifier: Wagmi, Label: "Wagmi"},
	{Identifier: Other, Label: "Other"},
	{Identifier: Viem, Label: "Viem"},
	{Identifier: Ethers5, Label: "Ethers v5"},
	{Identifier: Ethers, Label: "Ethers v6"},
	{Identifier: Web3JS, Label: "Web3.js"},
	{Identifier: JS, Label: "JavaScript"},
}

var catalogIndex = buildIndex(catalog)

func buildIndex(opts []Option) map[string]int {
	index := make(map[string]int, len(opts))
	for i, opt := range opts {
		if _, dup := index[opt.Identifier]; dup {
			panic("platform: duplicate identifier in catalog: " + opt.Identifier)
		}
		index[opt.Identifier] = i
	}
	return index
}
