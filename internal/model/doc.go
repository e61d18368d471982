// Package model trains and scores the regressors that predict movie ratings.
//
// Four regressors sit behind one Fit/Predict interface: ordinary least squares
// (with an optional ridge penalty, solved through gonum/mat), a variance-
// reduction regression tree, a bootstrap-aggregated random forest, and
// least-squares gradient boosting. The Suite fits every candidate on the train
// split, scores train and test with R²/RMSE/MAE, and ranks by test R².
// K-fold cross-validated grid search tunes the two tree ensembles.
package model
