// Package quiz はタスク種別クイズの実行機能を提供する。
//
// Runner はシナリオを格納順に1件ずつ提示し、回答を1行読み取って
// 正解ラベルと比較し、最後にスコアと合否メッセージを出力する。
//
// # 回答の正規化
//
// 入力は前後の空白を除去したうえで大文字に変換してから比較する。
// 空行やラベル集合にない文字列は不正解として扱い、エラーにはしない。
//
// # 入力の終端
//
// プロンプトで入力が尽きた場合、Run は ErrInputClosed を返して即座に
// 終了する。スコアや締めのメッセージは出力しない。
//
// # 使用例
//
//	catalog, err := config.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := quiz.New(catalog).Run(ctx, os.Stdin, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Passed)
package quiz
